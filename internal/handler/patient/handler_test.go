package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlight/clinic-api/internal/handler"
	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/repository/memory"
	patientsvc "github.com/medlight/clinic-api/internal/service/patient"
	recordsvc "github.com/medlight/clinic-api/internal/service/record"
)

type env struct {
	router   *gin.Engine
	patients *memory.PatientRepository
	doctors  *memory.DoctorRepository
	records  *memory.RecordRepository
}

func newEnv() *env {
	gin.SetMode(gin.TestMode)

	patients := memory.NewPatientRepository()
	doctors := memory.NewDoctorRepository()
	records := memory.NewRecordRepository()

	h := NewHandler(
		patientsvc.NewService(patients),
		recordsvc.NewService(records, patients, doctors),
	)

	router := gin.New()
	api := router.Group(handler.APIPrefix)
	h.RegisterRoutes(api, func(c *gin.Context) { c.Next() })

	return &env{router: router, patients: patients, doctors: doctors, records: records}
}

func (e *env) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, handler.APIPrefix+path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

const annJSON = `{"name":"Ann","phone":"555000111","birthday":"1990-01-01"}`

func (e *env) createAnn(t *testing.T) uuid.UUID {
	t.Helper()
	w := e.do(t, http.MethodPost, "/patients", annJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	location := w.Header().Get("Location")
	id, err := uuid.Parse(strings.TrimPrefix(location, handler.APIPrefix+"/patients/"))
	require.NoError(t, err)
	return id
}

func TestCreatePatient(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodPost, "/patients", annJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, handler.APIPrefix+"/patients/"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, location, body["location"])
}

func TestCreatePatientMissingField(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodPost, "/patients", `{"name":"Ann","birthday":"1990-01-01"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Bad Request", resp.Name)
	assert.NotEmpty(t, resp.Description)

	assert.Equal(t, 0, e.patients.Len(), "rejected create must not persist anything")
}

func TestGetPatientRoundTrip(t *testing.T) {
	e := newEnv()
	id := e.createAnn(t)

	w := e.do(t, http.MethodGet, "/patients/"+id.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, id.String(), got["uuid"])
	assert.Equal(t, "Ann", got["name"])
	assert.Equal(t, "555000111", got["phone"])
	assert.Equal(t, "1990-01-01", got["birthday"])
}

func TestGetPatientNotFound(t *testing.T) {
	e := newEnv()
	missing := uuid.New()

	w := e.do(t, http.MethodGet, "/patients/"+missing.String(), "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, fmt.Sprintf("patient with uuid=%s not found", missing), resp.Description)
}

func TestGetPatientBadID(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodGet, "/patients/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPatients(t *testing.T) {
	e := newEnv()
	e.createAnn(t)

	w := e.do(t, http.MethodGet, "/patients", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got["patients"], 1)
	assert.Equal(t, "Ann", got["patients"][0]["name"])
}

func TestUpdatePatientPartial(t *testing.T) {
	e := newEnv()
	id := e.createAnn(t)

	w := e.do(t, http.MethodPatch, "/patients/"+id.String(), `{"phone":"999888777"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = e.do(t, http.MethodGet, "/patients/"+id.String(), "")
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "999888777", got["phone"])
	assert.Equal(t, "Ann", got["name"], "unmentioned fields must not change")
	assert.Equal(t, "1990-01-01", got["birthday"])
}

func TestUpdatePatientNullFieldIgnored(t *testing.T) {
	e := newEnv()
	id := e.createAnn(t)

	w := e.do(t, http.MethodPatch, "/patients/"+id.String(), `{"name":null,"phone":"999888777"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/patients/"+id.String(), "")
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ann", got["name"], "null means leave unchanged")
}

func TestDeletePatientTwice(t *testing.T) {
	e := newEnv()
	id := e.createAnn(t)

	w := e.do(t, http.MethodDelete, "/patients/"+id.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodDelete, "/patients/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecordForPatient(t *testing.T) {
	e := newEnv()
	id := e.createAnn(t)

	doctorID := uuid.New()
	require.NoError(t, e.doctors.Create(context.Background(), testDoctor(doctorID)))

	body := fmt.Sprintf(`{"doctor_uuid":%q,"date":"2023-03-10T14:00:00Z","used_services":"x-ray","disease":"fracture","discharge":"rest"}`, doctorID)
	w := e.do(t, http.MethodPost, "/patients/"+id.String(), body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), handler.APIPrefix+"/records/"))
	assert.Equal(t, 1, e.records.Len())
}

func TestCreateRecordForMissingPatient(t *testing.T) {
	e := newEnv()

	doctorID := uuid.New()
	require.NoError(t, e.doctors.Create(context.Background(), testDoctor(doctorID)))

	body := fmt.Sprintf(`{"doctor_uuid":%q,"date":"2023-03-10T14:00:00Z","used_services":"x-ray","disease":"fracture","discharge":"rest"}`, doctorID)
	w := e.do(t, http.MethodPost, "/patients/"+uuid.New().String(), body)
	assert.Equal(t, http.StatusNotFound, w.Code, "the patient is addressed by the URL")
	assert.Equal(t, 0, e.records.Len())
}

func testDoctor(id uuid.UUID) *model.Doctor {
	return &model.Doctor{ID: id, Name: "Gregory House", Speciality: "diagnostics"}
}

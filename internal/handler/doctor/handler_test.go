package doctor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlight/clinic-api/internal/handler"
	"github.com/medlight/clinic-api/internal/repository/memory"
	doctorsvc "github.com/medlight/clinic-api/internal/service/doctor"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(doctorsvc.NewService(memory.NewDoctorRepository()))
	router := gin.New()
	h.RegisterRoutes(router.Group(handler.APIPrefix), func(c *gin.Context) { c.Next() })
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, handler.APIPrefix+path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const houseJSON = `{"name":"Gregory House","phone":"555000222","speciality":"diagnostics","qualification":"MD"}`

func TestUpdateDoctorSpeciality(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodPost, "/doctors", houseJSON)
	require.Equal(t, http.StatusCreated, w.Code)
	id := strings.TrimPrefix(w.Header().Get("Location"), handler.APIPrefix+"/doctors/")

	w = do(router, http.MethodPatch, "/doctors/"+id, `{"speciality":"nephrology"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/doctors/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "nephrology", got["speciality"])
	assert.Equal(t, "Gregory House", got["name"], "unmentioned fields must not change")
	assert.Equal(t, "555000222", got["phone"])
	assert.Equal(t, "MD", got["qualification"])
}

func TestListDoctorsKey(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodPost, "/doctors", houseJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodGet, "/doctors", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got["doctors"], 1)
}

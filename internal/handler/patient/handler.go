package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medlight/clinic-api/internal/handler"
	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/service/patient"
	"github.com/medlight/clinic-api/internal/service/record"
	apperr "github.com/medlight/clinic-api/pkg/errors"
)

type Handler struct {
	service *patient.Service
	records *record.Service
}

func NewHandler(service *patient.Service, records *record.Service) *Handler {
	return &Handler{
		service: service,
		records: records,
	}
}

// RegisterRoutes wires the patient resource. Mutating routes run behind
// the session gate; reads are open.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, gate gin.HandlerFunc) {
	patients := r.Group("/patients")
	{
		patients.POST("", gate, h.CreatePatient)
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PATCH("/:id", gate, h.UpdatePatient)
		patients.DELETE("/:id", gate, h.DeletePatient)

		// record creation nested under the owning patient
		patients.POST("/:id", gate, h.CreateRecord)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperr.NewValidation("bad JSON payload: %v", err))
		return
	}

	patient, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.RespondCreated(c, "patients", patient.ID)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	patient, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperr.NewValidation("bad JSON payload: %v", err))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.RespondEmpty(c)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.RespondEmpty(c)
}

// CreateRecord creates a record attached to the patient in the URL; the
// body's patient_uuid, if any, is ignored in favor of the path.
func (h *Handler) CreateRecord(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	// the patient is addressed by the URL, so a missing one is a 404
	// rather than a reference failure
	if _, err := h.service.Get(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	var req model.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperr.NewValidation("bad JSON payload: %v", err))
		return
	}
	req.PatientUUID = id.String()

	record, err := h.records.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.RespondCreated(c, "records", record.ID)
}

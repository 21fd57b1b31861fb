package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medlight/clinic-api/internal/handler"
	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/service/doctor"
	apperr "github.com/medlight/clinic-api/pkg/errors"
)

type Handler struct {
	service *doctor.Service
}

func NewHandler(service *doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, gate gin.HandlerFunc) {
	doctors := r.Group("/doctors")
	{
		doctors.POST("", gate, h.CreateDoctor)
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.PATCH("/:id", gate, h.UpdateDoctor)
		doctors.DELETE("/:id", gate, h.DeleteDoctor)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperr.NewValidation("bad JSON payload: %v", err))
		return
	}

	doctor, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.RespondCreated(c, "doctors", doctor.ID)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	doctor, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	var req model.UpdateDoctorRequest
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

func (h *Handler) DeleteDoctor(c *gin.Context) {
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

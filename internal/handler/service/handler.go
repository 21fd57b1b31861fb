package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medlight/clinic-api/internal/handler"
	"github.com/medlight/clinic-api/internal/model"
	svc "github.com/medlight/clinic-api/internal/service/service"
	apperr "github.com/medlight/clinic-api/pkg/errors"
)

type Handler struct {
	service *svc.Service
}

func NewHandler(service *svc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, gate gin.HandlerFunc) {
	services := r.Group("/services")
	{
		services.POST("", gate, h.CreateService)
		services.GET("", h.ListServices)
		services.GET("/:id", h.GetService)
		services.PATCH("/:id", gate, h.UpdateService)
		services.DELETE("/:id", gate, h.DeleteService)
	}
}

func (h *Handler) CreateService(c *gin.Context) {
	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperr.NewValidation("bad JSON payload: %v", err))
		return
	}

	service, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.RespondCreated(c, "services", service.ID)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	service, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	var req model.UpdateServiceRequest
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

func (h *Handler) DeleteService(c *gin.Context) {
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

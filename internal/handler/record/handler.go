package record

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medlight/clinic-api/internal/handler"
	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/service/record"
	apperr "github.com/medlight/clinic-api/pkg/errors"
)

type Handler struct {
	service *record.Service
}

func NewHandler(service *record.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, gate gin.HandlerFunc) {
	records := r.Group("/records")
	{
		records.POST("", gate, h.CreateRecord)
		records.GET("", h.ListRecords)
		records.GET("/:id", h.GetRecord)
		records.PATCH("/:id", gate, h.UpdateRecord)
		records.DELETE("/:id", gate, h.DeleteRecord)
	}
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperr.NewValidation("bad JSON payload: %v", err))
		return
	}

	record, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.RespondCreated(c, "records", record.ID)
}

func (h *Handler) ListRecords(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *Handler) GetRecord(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) UpdateRecord(c *gin.Context) {
	id, ok := handler.ParamID(c)
	if !ok {
		return
	}

	var req model.UpdateRecordRequest
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

func (h *Handler) DeleteRecord(c *gin.Context) {
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

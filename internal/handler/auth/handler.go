package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medlight/clinic-api/internal/handler"
	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/service/auth"
	apperr "github.com/medlight/clinic-api/pkg/errors"
	"github.com/medlight/clinic-api/pkg/session"
)

type Handler struct {
	service   *auth.Service
	cookieTTL time.Duration
}

func NewHandler(service *auth.Service, cookieTTL time.Duration) *Handler {
	return &Handler{
		service:   service,
		cookieTTL: cookieTTL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperr.NewValidation("bad JSON payload: %v", err))
		return
	}

	if err := h.service.Signup(c.Request.Context(), &req); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperr.NewValidation("bad JSON payload: %v", err))
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.SetCookie(session.CookieName, token, int(h.cookieTTL.Seconds()), "/", "", false, true)
	handler.RespondEmpty(c)
}

func (h *Handler) Logout(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		handler.RespondError(c, apperr.NewUnauthorized("no active session"))
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	handler.RespondEmpty(c)
}

package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperr "github.com/medlight/clinic-api/pkg/errors"
)

// APIPrefix is the base path all resource routes live under.
const APIPrefix = "/api/v1"

// ErrorResponse is the JSON shape shared by every error response.
type ErrorResponse struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RespondError writes the taxonomy mapping for err and aborts the chain.
// Unclassified errors are reported as internal without leaking detail.
func RespondError(c *gin.Context, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		c.AbortWithStatusJSON(appErr.HTTPStatus(), ErrorResponse{
			Code:        appErr.HTTPStatus(),
			Name:        appErr.Name(),
			Description: appErr.Description,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Code:        http.StatusInternalServerError,
		Name:        http.StatusText(http.StatusInternalServerError),
		Description: "internal server error",
	})
}

// RespondCreated writes 201 with a Location header for the new resource
// and echoes the location in the body.
func RespondCreated(c *gin.Context, resource string, id uuid.UUID) {
	location := fmt.Sprintf("%s/%s/%s", APIPrefix, resource, id)
	c.Header("Location", location)
	c.JSON(http.StatusCreated, gin.H{"location": location})
}

// RespondEmpty writes an empty 200 success body.
func RespondEmpty(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ParamID parses the :id path parameter. On failure it writes a 400 and
// returns false.
func ParamID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.NewValidation("path id %q is not a valid uuid", c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}

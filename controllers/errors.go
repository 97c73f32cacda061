package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"foodchef/pkg/resp"
	"foodchef/services"
)

// writeServiceError maps the service error taxonomy onto HTTP codes.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNoAvailability):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// internal/handlers/handlers.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/appdotbuilder/gamava/internal/services"
	"github.com/appdotbuilder/gamava/internal/utils"
)

// respondServiceError maps service error kinds onto the HTTP error
// envelope.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.ErrorResponse(c, 400, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, err.Error())
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

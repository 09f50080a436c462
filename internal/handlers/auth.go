// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/appdotbuilder/gamava/internal/services"
	"github.com/appdotbuilder/gamava/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, resp)
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req services.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.authService.RefreshToken(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// GET /auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}

// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/appdotbuilder/gamava/internal/services"
	"github.com/appdotbuilder/gamava/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"categories": categories})
}

// POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"category": category})
}

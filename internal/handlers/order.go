// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/appdotbuilder/gamava/internal/services"
	"github.com/appdotbuilder/gamava/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	// Orders are always created for the authenticated user.
	req.UserID = userID

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"order": order})
}

// GET /orders
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orders, err := h.orderService.GetUserOrders(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"orders": orders})
}

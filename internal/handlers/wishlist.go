// internal/handlers/wishlist.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/appdotbuilder/gamava/internal/services"
	"github.com/appdotbuilder/gamava/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// POST /wishlist
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req services.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	// A logged-in user always owns the entry; anonymous visitors send a
	// session id in the body.
	if userID, exists := utils.GetUserIDFromContext(c); exists {
		req.UserID = &userID
		req.SessionID = nil
	}

	item, err := h.wishlistService.AddToWishlist(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"item": item})
}

// GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	var userID *uint
	if id, exists := utils.GetUserIDFromContext(c); exists {
		userID = &id
	}

	var sessionID *string
	if v := c.Query("session_id"); v != "" {
		sessionID = &v
	}

	if userID == nil && sessionID == nil {
		utils.BadRequestResponse(c, "session_id is required for anonymous wishlists", nil)
		return
	}

	items, err := h.wishlistService.GetWishlist(userID, sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"items": items})
}

// DELETE /wishlist/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid wishlist item ID", nil)
		return
	}

	removed, err := h.wishlistService.RemoveFromWishlist(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"removed": removed})
}

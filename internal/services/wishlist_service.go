// internal/services/wishlist_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/appdotbuilder/gamava/internal/models"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

type AddToWishlistRequest struct {
	UserID    *uint   `json:"user_id,omitempty"`
	SessionID *string `json:"session_id,omitempty"`
	ProductID uint    `json:"product_id" validate:"required"`
}

// AddToWishlist stores a wishlist entry for either a user or an
// anonymous session. Adding an already-wishlisted product returns the
// existing row unchanged.
func (s *WishlistService) AddToWishlist(req *AddToWishlistRequest) (*models.WishlistItem, error) {
	hasUser := req.UserID != nil
	hasSession := req.SessionID != nil && *req.SessionID != ""
	if hasUser == hasSession {
		return nil, fmt.Errorf("exactly one of user_id or session_id must be set: %w", ErrValidation)
	}
	if req.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required: %w", ErrValidation)
	}

	var product models.Product
	if err := s.db.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", req.ProductID, ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	query := s.db.Where("product_id = ?", req.ProductID)
	if hasUser {
		query = query.Where("user_id = ?", *req.UserID)
	} else {
		query = query.Where("session_id = ? AND user_id IS NULL", *req.SessionID)
	}

	var existing models.WishlistItem
	err := query.First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	item := &models.WishlistItem{
		UserID:    req.UserID,
		SessionID: req.SessionID,
		ProductID: req.ProductID,
	}
	if !hasSession {
		item.SessionID = nil
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add to wishlist: %w", err)
	}

	return item, nil
}

func (s *WishlistService) GetWishlist(userID *uint, sessionID *string) ([]models.WishlistItem, error) {
	query := s.db.Preload("Product")

	switch {
	case userID != nil && sessionID != nil:
		query = query.Where("user_id = ? OR session_id = ?", *userID, *sessionID)
	case userID != nil:
		query = query.Where("user_id = ?", *userID)
	case sessionID != nil:
		query = query.Where("session_id = ?", *sessionID)
	}

	var items []models.WishlistItem
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}

	return items, nil
}

// RemoveFromWishlist deletes by row id. A missing id is reported as
// removed=false, not an error, and leaves the store unchanged.
func (s *WishlistService) RemoveFromWishlist(id uint) (bool, error) {
	result := s.db.Delete(&models.WishlistItem{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove from wishlist: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

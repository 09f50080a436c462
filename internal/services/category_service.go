// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/appdotbuilder/gamava/internal/models"
	"github.com/appdotbuilder/gamava/internal/utils"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Slug        string  `json:"slug" validate:"required,slug"`
	Description *string `json:"description,omitempty"`
	ParentID    *uint   `json:"parent_id,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	SortOrder   int     `json:"sort_order"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (s *CategoryService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if req.ParentID != nil {
		var parent models.Category
		if err := s.db.First(&parent, *req.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("parent category %d: %w", *req.ParentID, ErrNotFound)
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("slug = ?", req.Slug).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("category slug %q: %w", req.Slug, ErrConflict)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// ListCategories returns all categories in listing order: sort_order
// first, name as tie-break.
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/appdotbuilder/gamava/internal/models"
	"github.com/appdotbuilder/gamava/internal/utils"
)

// DefaultSearchLimit is the page size applied when a search request
// does not set one.
const DefaultSearchLimit = 20

const (
	maxSearchLimit      = 100
	defaultFeaturedSize = 10
)

// productSortColumns is the closed mapping from exposed sort keys to
// database columns. Sort keys are never used to index columns directly.
var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"created_at": "created_at",
	"featured":   "featured",
}

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

type CreateProductRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=255"`
	Slug             string   `json:"slug" validate:"required,slug"`
	Description      *string  `json:"description,omitempty"`
	ShortDescription *string  `json:"short_description,omitempty"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice    *float64 `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	CategoryID       uint     `json:"category_id" validate:"required"`
	SKU              *string  `json:"sku,omitempty"`
	StockQuantity    int      `json:"stock_quantity" validate:"min=0"`
	DigitalKey       *string  `json:"digital_key,omitempty"`
	Platform         *string  `json:"platform,omitempty"`
	Region           *string  `json:"region,omitempty"`
	Status           string   `json:"status,omitempty"`
	Featured         bool     `json:"featured"`
	ImageURL         *string  `json:"image_url,omitempty"`
	GalleryURLs      []string `json:"gallery_urls,omitempty"`
	MetaTitle        *string  `json:"meta_title,omitempty"`
	MetaDescription  *string  `json:"meta_description,omitempty"`
}

// ProductFilters is the optional filter/sort/window request for
// SearchProducts. Absent fields impose no constraint; present
// predicates combine with logical AND.
type ProductFilters struct {
	CategoryID *uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Platform   *string
	Region     *string
	Featured   *bool
	Status     *models.ProductStatus
	Search     string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

func (f *ProductFilters) validate() error {
	if f.SortBy != "" {
		if _, ok := productSortColumns[f.SortBy]; !ok {
			return fmt.Errorf("unknown sort key %q: %w", f.SortBy, ErrValidation)
		}
	}
	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		return fmt.Errorf("sort order must be asc or desc: %w", ErrValidation)
	}
	if f.Status != nil && !f.Status.Valid() {
		return fmt.Errorf("unknown product status %q: %w", *f.Status, ErrValidation)
	}
	if f.Limit < 0 || f.Limit > maxSearchLimit {
		return fmt.Errorf("limit must be between 1 and %d: %w", maxSearchLimit, ErrValidation)
	}
	if f.Offset < 0 {
		return fmt.Errorf("offset must be non-negative: %w", ErrValidation)
	}
	return nil
}

// orderClause resolves the requested ordering. Without an explicit sort
// key the listing is newest-first, which callers rely on for stable
// limit/offset paging.
func (f *ProductFilters) orderClause() string {
	if f.SortBy == "" {
		return "created_at DESC"
	}

	direction := "ASC"
	if f.SortOrder == "desc" {
		direction = "DESC"
	}
	return productSortColumns[f.SortBy] + " " + direction
}

// SearchProducts applies the filter conjunction, ordering and window
// and returns the matching page plus the total match count.
func (s *ProductService) SearchProducts(filters ProductFilters) ([]models.Product, int64, error) {
	if err := filters.validate(); err != nil {
		return nil, 0, err
	}

	query := s.db.Model(&models.Product{})

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.Platform != nil && *filters.Platform != "" {
		query = query.Where("platform = ?", *filters.Platform)
	}
	if filters.Region != nil && *filters.Region != "" {
		query = query.Where("region = ?", *filters.Region)
	}
	if filters.Featured != nil {
		query = query.Where("featured = ?", *filters.Featured)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Search != "" {
		searchTerm := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	limit := filters.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	var products []models.Product
	if err := query.Order(filters.orderClause()).
		Limit(limit).
		Offset(filters.Offset).
		Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	status := models.ProductStatusActive
	if req.Status != "" {
		status = models.ProductStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown product status %q: %w", req.Status, ErrValidation)
		}
	}

	// Category must exist before anything is written
	var category models.Category
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", req.CategoryID, ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.Product{}).Where("slug = ?", req.Slug).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("product slug %q: %w", req.Slug, ErrConflict)
	}

	if req.SKU != nil && *req.SKU != "" {
		if err := s.db.Model(&models.Product{}).Where("sku = ?", *req.SKU).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("product sku %q: %w", *req.SKU, ErrConflict)
		}
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            decimal.NewFromFloat(req.Price).Round(2),
		CategoryID:       req.CategoryID,
		SKU:              req.SKU,
		StockQuantity:    req.StockQuantity,
		DigitalKey:       req.DigitalKey,
		Platform:         req.Platform,
		Region:           req.Region,
		Status:           status,
		Featured:         req.Featured,
		ImageURL:         req.ImageURL,
		GalleryURLs:      req.GalleryURLs,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
	}

	if req.OriginalPrice != nil {
		original := decimal.NewFromFloat(*req.OriginalPrice).Round(2)
		product.OriginalPrice = &original
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) GetFeaturedProducts(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultFeaturedSize
	}

	var products []models.Product
	if err := s.db.Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}

	return products, nil
}

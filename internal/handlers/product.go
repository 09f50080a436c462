// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/gamava/internal/models"
	"github.com/appdotbuilder/gamava/internal/services"
	"github.com/appdotbuilder/gamava/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filters, err := parseProductFilters(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	products, total, err := h.productService.SearchProducts(*filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	limit := filters.Limit
	if limit == 0 {
		limit = services.DefaultSearchLimit
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	utils.SuccessResponseWithMeta(c, products, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": filters.Offset,
	})
}

func parseProductFilters(c *gin.Context) (*services.ProductFilters, error) {
	filters := &services.ProductFilters{
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errInvalidQueryParam("category_id")
		}
		categoryID := uint(id)
		filters.CategoryID = &categoryID
	}

	if v := c.Query("min_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errInvalidQueryParam("min_price")
		}
		filters.MinPrice = &price
	}

	if v := c.Query("max_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errInvalidQueryParam("max_price")
		}
		filters.MaxPrice = &price
	}

	if v := c.Query("platform"); v != "" {
		filters.Platform = &v
	}

	if v := c.Query("region"); v != "" {
		filters.Region = &v
	}

	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errInvalidQueryParam("featured")
		}
		filters.Featured = &featured
	}

	if v := c.Query("status"); v != "" {
		status := models.ProductStatus(v)
		filters.Status = &status
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidQueryParam("limit")
		}
		filters.Limit = limit
	}

	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidQueryParam("offset")
		}
		filters.Offset = offset
	}

	return filters, nil
}

type queryParamError string

func (e queryParamError) Error() string {
	return "invalid query parameter: " + string(e)
}

func errInvalidQueryParam(name string) error {
	return queryParamError(name)
}

// GET /products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit > 50 {
		limit = 10
	}

	products, err := h.productService.GetFeaturedProducts(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"products": products})
}

// GET /products/:slug
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	product, err := h.productService.GetProductBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"product": product})
}

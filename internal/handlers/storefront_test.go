// internal/handlers/storefront_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appdotbuilder/gamava/internal/models"
	"github.com/appdotbuilder/gamava/internal/services"
)

type StorefrontTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *StorefrontTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
	))
	s.db = db

	productHandler := NewProductHandler(services.NewProductService(db))
	wishlistHandler := NewWishlistHandler(services.NewWishlistService(db))

	s.router = gin.New()
	v1 := s.router.Group("/v1")
	{
		v1.GET("/products", productHandler.GetProducts)
		v1.GET("/products/featured", productHandler.GetFeaturedProducts)
		v1.GET("/products/:slug", productHandler.GetProductBySlug)
		v1.GET("/wishlist", wishlistHandler.GetWishlist)
		v1.POST("/wishlist", wishlistHandler.AddToWishlist)
		v1.DELETE("/wishlist/:id", wishlistHandler.RemoveFromWishlist)
	}
}

func (s *StorefrontTestSuite) seedCatalog() *models.Product {
	category := &models.Category{Name: "Games", Slug: "games"}
	s.Require().NoError(s.db.Create(category).Error)

	products := []*models.Product{
		{Name: "Alpha", Slug: "alpha", Price: decimal.RequireFromString("19.99"), CategoryID: category.ID, Status: models.ProductStatusActive},
		{Name: "Beta", Slug: "beta", Price: decimal.RequireFromString("29.99"), CategoryID: category.ID, Status: models.ProductStatusActive, Featured: true},
		{Name: "Gamma", Slug: "gamma", Price: decimal.RequireFromString("39.99"), CategoryID: category.ID, Status: models.ProductStatusInactive},
	}
	for _, p := range products {
		s.Require().NoError(s.db.Create(p).Error)
	}
	return products[0]
}

func (s *StorefrontTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *StorefrontTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (s *StorefrontTestSuite) TestListProducts() {
	s.seedCatalog()

	w := s.request("GET", "/v1/products", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("3", w.Header().Get("X-Total-Count"))

	response := s.decode(w)
	s.True(response["success"].(bool))
	s.Len(response["data"], 3)

	meta := response["meta"].(map[string]interface{})
	s.Equal(float64(3), meta["total"])
	s.Equal(float64(20), meta["limit"])
}

func (s *StorefrontTestSuite) TestListProductsWithFilters() {
	s.seedCatalog()

	w := s.request("GET", "/v1/products?status=active&min_price=25&sort_by=price", nil)
	s.Equal(http.StatusOK, w.Code)

	response := s.decode(w)
	data := response["data"].([]interface{})
	s.Require().Len(data, 1)
	s.Equal("Beta", data[0].(map[string]interface{})["name"])
}

func (s *StorefrontTestSuite) TestListProductsRejectsBadInput() {
	for _, path := range []string{
		"/v1/products?sort_by=password_hash",
		"/v1/products?min_price=abc",
		"/v1/products?limit=9999",
		"/v1/products?featured=maybe",
	} {
		w := s.request("GET", path, nil)
		s.Equal(http.StatusBadRequest, w.Code, path)
		s.False(s.decode(w)["success"].(bool), path)
	}
}

func (s *StorefrontTestSuite) TestGetProductBySlug() {
	s.seedCatalog()

	w := s.request("GET", "/v1/products/alpha", nil)
	s.Equal(http.StatusOK, w.Code)

	response := s.decode(w)
	product := response["data"].(map[string]interface{})["product"].(map[string]interface{})
	s.Equal("Alpha", product["name"])
	s.Equal(float64(19.99), product["price"])

	w = s.request("GET", "/v1/products/no-such-game", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *StorefrontTestSuite) TestFeaturedProducts() {
	s.seedCatalog()

	w := s.request("GET", "/v1/products/featured", nil)
	s.Equal(http.StatusOK, w.Code)

	response := s.decode(w)
	products := response["data"].(map[string]interface{})["products"].([]interface{})
	s.Require().Len(products, 1)
	s.Equal("Beta", products[0].(map[string]interface{})["name"])
}

func (s *StorefrontTestSuite) TestAnonymousWishlistFlow() {
	product := s.seedCatalog()

	addBody := map[string]interface{}{
		"session_id": "sess-42",
		"product_id": product.ID,
	}
	w := s.request("POST", "/v1/wishlist", addBody)
	s.Equal(http.StatusCreated, w.Code)

	// Second add of the same product is absorbed, not duplicated
	w = s.request("POST", "/v1/wishlist", addBody)
	s.Equal(http.StatusCreated, w.Code)

	w = s.request("GET", "/v1/wishlist?session_id=sess-42", nil)
	s.Equal(http.StatusOK, w.Code)
	items := s.decode(w)["data"].(map[string]interface{})["items"].([]interface{})
	s.Require().Len(items, 1)
	itemID := items[0].(map[string]interface{})["id"].(float64)

	// Anonymous reads must name their session
	w = s.request("GET", "/v1/wishlist", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request("DELETE", fmt.Sprintf("/v1/wishlist/%d", int(itemID)), nil)
	s.Equal(http.StatusOK, w.Code)
	s.True(s.decode(w)["data"].(map[string]interface{})["removed"].(bool))

	w = s.request("DELETE", fmt.Sprintf("/v1/wishlist/%d", int(itemID)), nil)
	s.Equal(http.StatusOK, w.Code)
	s.False(s.decode(w)["data"].(map[string]interface{})["removed"].(bool))
}

func (s *StorefrontTestSuite) TestAddToWishlistUnknownProduct() {
	w := s.request("POST", "/v1/wishlist", map[string]interface{}{
		"session_id": "sess-42",
		"product_id": 999,
	})
	s.Equal(http.StatusNotFound, w.Code)
}

func TestStorefrontTestSuite(t *testing.T) {
	suite.Run(t, new(StorefrontTestSuite))
}

// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/appdotbuilder/gamava/internal/config"
	"github.com/appdotbuilder/gamava/internal/handlers"
	"github.com/appdotbuilder/gamava/internal/middleware"
	"github.com/appdotbuilder/gamava/internal/services"
	"github.com/appdotbuilder/gamava/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db)
	wishlistService := services.NewWishlistService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", middleware.AuthRequired(), middleware.AdminRequired(), categoryHandler.CreateCategory)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/:slug", productHandler.GetProductBySlug)
			products.POST("", middleware.AuthRequired(), middleware.AdminRequired(), productHandler.CreateProduct)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.GetUserOrders)
		}

		// Wishlist routes (anonymous sessions allowed)
		wishlist := v1.Group("/wishlist")
		wishlist.Use(middleware.OptionalAuth())
		{
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.POST("", wishlistHandler.AddToWishlist)
			wishlist.DELETE("/:id", wishlistHandler.RemoveFromWishlist)
		}
	}

	return r
}

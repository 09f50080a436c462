// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appdotbuilder/gamava/internal/config"
	"github.com/appdotbuilder/gamava/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedInitialData creates the default admin account and the root
// catalog categories on first boot. Re-running is a no-op.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var adminCount int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount)

	if adminCount == 0 {
		username := "admin"
		admin := &models.User{
			Email:     getSeedEnv("ADMIN_EMAIL", "admin@gamava.com"),
			FirstName: "System",
			LastName:  "Administrator",
			Username:  &username,
			IsAdmin:   true,
			IsActive:  true,
		}

		if err := admin.SetPassword(getSeedEnv("ADMIN_PASSWORD", "admin123!@#")); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	defaultCategories := []models.Category{
		{Name: "PC Games", Slug: "pc-games", SortOrder: 1, IsActive: true},
		{Name: "Console Games", Slug: "console-games", SortOrder: 2, IsActive: true},
		{Name: "Gift Cards", Slug: "gift-cards", SortOrder: 3, IsActive: true},
		{Name: "Software", Slug: "software", SortOrder: 4, IsActive: true},
	}

	for _, category := range defaultCategories {
		var count int64
		db.Model(&models.Category{}).Where("slug = ?", category.Slug).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to create category %q: %w", category.Slug, err)
		}
	}

	return nil
}

func getSeedEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Catalog listing paths
		"CREATE INDEX IF NOT EXISTS idx_products_category_status ON products(category_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_categories_sort ON categories(sort_order, name)",

		// Order history
		"CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders(user_id, created_at DESC)",

		// Duplicate suppression must hold under concurrent adds, so the
		// wishlist uniqueness lives in the database, not only in the
		// service-level existence check.
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_wishlist_user_product ON wishlist_items(user_id, product_id) WHERE user_id IS NOT NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_wishlist_session_product ON wishlist_items(session_id, product_id) WHERE session_id IS NOT NULL",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index %q: %w", index, err)
		}
	}

	return nil
}

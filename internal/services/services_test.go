// internal/services/services_test.go
package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appdotbuilder/gamava/internal/config"
	"github.com/appdotbuilder/gamava/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
}

func seedCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: slug,
		Slug: slug,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

type productSeed struct {
	name     string
	price    string
	platform string
	status   models.ProductStatus
	featured bool
	created  time.Time
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, seed productSeed) *models.Product {
	t.Helper()

	status := seed.status
	if status == "" {
		status = models.ProductStatusActive
	}

	product := &models.Product{
		Name:       seed.name,
		Slug:       seed.name,
		Price:      decimal.RequireFromString(seed.price),
		CategoryID: categoryID,
		Status:     status,
		Featured:   seed.featured,
	}
	if seed.platform != "" {
		product.Platform = &seed.platform
	}

	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product %q: %v", seed.name, err)
	}

	if !seed.created.IsZero() {
		if err := db.Model(product).UpdateColumn("created_at", seed.created).Error; err != nil {
			t.Fatalf("failed to backdate product %q: %v", seed.name, err)
		}
		product.CreatedAt = seed.created
	}

	return product
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
	}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

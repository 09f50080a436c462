// internal/models/product.go
package models

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name             string           `json:"name" gorm:"size:255;not null"`
	Slug             string           `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description      *string          `json:"description" gorm:"type:text"`
	ShortDescription *string          `json:"short_description" gorm:"type:text"`
	Price            decimal.Decimal  `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice    *decimal.Decimal `json:"original_price" gorm:"type:decimal(10,2)"`
	CategoryID       uint             `json:"category_id" gorm:"not null;index"`
	SKU              *string          `json:"sku" gorm:"uniqueIndex;size:100"`
	StockQuantity    int              `json:"stock_quantity" gorm:"default:0;not null"`
	DigitalKey       *string          `json:"digital_key" gorm:"size:255"`
	Platform         *string          `json:"platform" gorm:"size:100;index"`
	Region           *string          `json:"region" gorm:"size:100"`
	Status           ProductStatus    `json:"status" gorm:"type:varchar(20);default:'active';not null;index"`
	Featured         bool             `json:"featured" gorm:"default:false;not null;index"`
	ImageURL         *string          `json:"image_url" gorm:"size:500"`
	GalleryURLs      pq.StringArray   `json:"gallery_urls" gorm:"type:text[]"`
	MetaTitle        *string          `json:"meta_title" gorm:"size:255"`
	MetaDescription  *string          `json:"meta_description" gorm:"type:text"`

	// Relationships
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

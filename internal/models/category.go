// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:255;not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description *string `json:"description" gorm:"type:text"`
	ParentID    *uint   `json:"parent_id" gorm:"index"`
	ImageURL    *string `json:"image_url" gorm:"size:500"`
	SortOrder   int     `json:"sort_order" gorm:"default:0;not null"`
	IsActive    bool    `json:"is_active" gorm:"default:true;not null"`

	// Relationships
	Parent   *Category  `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Children []Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Products []Product  `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

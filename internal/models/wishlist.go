// internal/models/wishlist.go
package models

// WishlistItem belongs to either a registered user or an anonymous
// session, never both. The write path enforces the exclusivity; partial
// unique indexes on (user_id, product_id) and (session_id, product_id)
// back it against concurrent adds.
type WishlistItem struct {
	BaseModel
	UserID    *uint   `json:"user_id" gorm:"index"`
	SessionID *string `json:"session_id" gorm:"size:128;index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

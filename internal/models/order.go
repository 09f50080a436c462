// internal/models/order.go
package models

import (
	"github.com/shopspring/decimal"
)

type Order struct {
	BaseModel
	UserID           uint            `json:"user_id" gorm:"not null;index"`
	OrderNumber      string          `json:"order_number" gorm:"uniqueIndex;size:64;not null"`
	Status           OrderStatus     `json:"status" gorm:"type:varchar(20);default:'pending';not null;index"`
	TotalAmount      decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Currency         string          `json:"currency" gorm:"size:3;default:'USD';not null"`
	BillingEmail     string          `json:"billing_email" gorm:"size:255;not null"`
	BillingFirstName string          `json:"billing_first_name" gorm:"size:100;not null"`
	BillingLastName  string          `json:"billing_last_name" gorm:"size:100;not null"`
	PaymentMethod    *string         `json:"payment_method" gorm:"size:100"`
	PaymentStatus    string          `json:"payment_status" gorm:"size:50;default:'pending';not null"`
	Notes            *string         `json:"notes" gorm:"type:text"`

	// Relationships
	User  User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is a price snapshot: unit_price and digital_key are copied
// from the product at checkout time and never follow later product
// changes.
type OrderItem struct {
	BaseModel
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	ProductID  uint            `json:"product_id" gorm:"not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	DigitalKey *string         `json:"digital_key" gorm:"size:255"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

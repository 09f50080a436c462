// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/appdotbuilder/gamava/internal/models"
	"github.com/appdotbuilder/gamava/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	UserID           uint               `json:"user_id" validate:"required"`
	Items            []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	BillingEmail     string             `json:"billing_email" validate:"required,email"`
	BillingFirstName string             `json:"billing_first_name" validate:"required,min=1"`
	BillingLastName  string             `json:"billing_last_name" validate:"required,min=1"`
	PaymentMethod    *string            `json:"payment_method,omitempty"`
	Notes            *string            `json:"notes,omitempty"`
}

// CreateOrder resolves current product prices into immutable line
// snapshots, computes the exact decimal total and persists the order
// header together with all line items in a single transaction. Any
// missing product fails the whole request; no partial orders exist.
//
// Stock is neither checked nor decremented here; fulfillment owns
// stock. The user's active flag is also not consulted at checkout,
// matching the login-only check elsewhere.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
		}
	}

	var order *models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %d: %w", req.UserID, ErrNotFound)
			}
			return fmt.Errorf("database error: %w", err)
		}

		// Batch-resolve every referenced product. A single missing id
		// aborts the whole order.
		productIDs := make([]uint, 0, len(req.Items))
		seen := make(map[uint]struct{}, len(req.Items))
		for _, item := range req.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			productIDs = append(productIDs, item.ProductID)
		}

		var products []models.Product
		if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if len(products) != len(productIDs) {
			return fmt.Errorf("one or more products: %w", ErrNotFound)
		}

		productsByID := make(map[uint]models.Product, len(products))
		for _, p := range products {
			productsByID[p.ID] = p
		}

		// Duplicate product references stay separate lines; each is
		// priced independently.
		totalAmount := decimal.Zero
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			product := productsByID[item.ProductID]
			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			totalAmount = totalAmount.Add(lineTotal)

			items = append(items, models.OrderItem{
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitPrice:  product.Price,
				TotalPrice: lineTotal.Round(2),
				DigitalKey: product.DigitalKey,
			})
		}

		order = &models.Order{
			UserID:           req.UserID,
			OrderNumber:      utils.GenerateOrderNumber(),
			Status:           models.OrderStatusPending,
			TotalAmount:      totalAmount.Round(2),
			Currency:         "USD",
			BillingEmail:     req.BillingEmail,
			BillingFirstName: req.BillingFirstName,
			BillingLastName:  req.BillingLastName,
			PaymentMethod:    req.PaymentMethod,
			PaymentStatus:    "pending",
			Notes:            req.Notes,
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		order.Items = items
		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) GetUserOrders(userID uint) ([]models.Order, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var orders []models.Order
	if err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

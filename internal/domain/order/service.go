// internal/domain/order/service.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/webshop-backend/internal/config"
	"github.com/your-org/webshop-backend/internal/domain/coupon"
	"github.com/your-org/webshop-backend/internal/domain/inventory"
	"github.com/your-org/webshop-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// PlaceOrderItem is one requested order line
type PlaceOrderItem struct {
	ProductID uint  `json:"product_id" binding:"required"`
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// PlaceOrderRequest represents checkout data
type PlaceOrderRequest struct {
	UserID          *uint            `json:"user_id"`
	Email           string           `json:"email" binding:"required,email"`
	PaymentMethod   PaymentMethod    `json:"payment_method" binding:"required"`
	CouponCode      *string          `json:"coupon_code"`
	LoyaltyDiscount int64            `json:"loyalty_discount"`
	Items           []PlaceOrderItem `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates an order: snapshots item names and prices, applies the
// coupon, decrements stock and appends ORDER_PLACED inventory logs, all in
// one transaction.
func (s *Service) PlaceOrder(req *PlaceOrderRequest) (*Order, error) {
	var placed *Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var subtotal int64
		items := make([]OrderItem, 0, len(req.Items))
		logs := make([]inventory.InventoryLog, 0, len(req.Items))

		for _, line := range req.Items {
			var p product.Product
			if err := tx.Preload("Variants").First(&p, line.ProductID).Error; err != nil {
				return fmt.Errorf("product %d not found", line.ProductID)
			}
			if p.IsArchived {
				return fmt.Errorf("product %q is no longer available", p.Name)
			}

			if line.VariantID != nil {
				variant := findVariant(p.Variants, *line.VariantID)
				if variant == nil {
					return fmt.Errorf("variant %d not found for product %q", *line.VariantID, p.Name)
				}
				if variant.Stock < line.Quantity {
					return fmt.Errorf("insufficient stock for %q: available %d, requested %d", p.Name, variant.Stock, line.Quantity)
				}
				err := tx.Model(&product.Variant{}).Where("id = ?", variant.ID).
					UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity)).Error
				if err != nil {
					return fmt.Errorf("failed to update variant stock: %w", err)
				}
			}

			if p.Stock < line.Quantity {
				return fmt.Errorf("insufficient stock for %q: available %d, requested %d", p.Name, p.Stock, line.Quantity)
			}
			err := tx.Model(&product.Product{}).Where("id = ?", p.ID).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity)).Error
			if err != nil {
				return fmt.Errorf("failed to update product stock: %w", err)
			}

			unitPrice := p.EffectivePrice()
			subtotal += unitPrice * int64(line.Quantity)

			productID := p.ID
			items = append(items, OrderItem{
				ProductID: &productID,
				VariantID: line.VariantID,
				Name:      p.Name,
				Price:     unitPrice,
				Quantity:  line.Quantity,
			})
			logs = append(logs, inventory.InventoryLog{
				ProductID: p.ID,
				VariantID: line.VariantID,
				Change:    -line.Quantity,
				Reason:    inventory.ReasonOrderPlaced,
			})
		}

		var discount int64
		if req.CouponCode != nil && *req.CouponCode != "" {
			var c coupon.Coupon
			if err := tx.Where("code = ? AND is_active = ?", strings.ToUpper(*req.CouponCode), true).First(&c).Error; err != nil {
				return fmt.Errorf("coupon %q not found or inactive", *req.CouponCode)
			}
			if c.IsExpired(time.Now()) {
				return fmt.Errorf("coupon %q has expired", c.Code)
			}
			if subtotal < c.MinOrderValue {
				return fmt.Errorf("order value below coupon minimum of %d", c.MinOrderValue)
			}
			discount = c.DiscountFor(subtotal)
		}

		total := subtotal - discount - req.LoyaltyDiscount
		if total < 0 {
			total = 0
		}

		o := &Order{
			OrderNumber:     s.generateOrderNumber(),
			UserID:          req.UserID,
			Email:           req.Email,
			Status:          StatusPending,
			TotalPrice:      total,
			DiscountAmount:  discount,
			LoyaltyDiscount: req.LoyaltyDiscount,
			PaymentMethod:   req.PaymentMethod,
			CouponCode:      req.CouponCode,
			Items:           items,
		}
		if err := tx.Create(o).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range logs {
			logs[i].Note = o.OrderNumber
		}
		if err := tx.Create(&logs).Error; err != nil {
			return fmt.Errorf("failed to record inventory logs: %w", err)
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// CancelOrder transitions an order to cancelled and returns its stock,
// appending ORDER_CANCELLED inventory logs
func (s *Service) CancelOrder(orderID uint) (*Order, error) {
	var cancelled *Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.Preload("Items").First(&o, orderID).Error; err != nil {
			return fmt.Errorf("order %d not found", orderID)
		}
		if !o.CanBeCancelled() {
			return fmt.Errorf("order %s cannot be cancelled in status %s", o.OrderNumber, o.Status)
		}

		if err := tx.Model(&o).Update("status", StatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		for _, item := range o.Items {
			if item.ProductID == nil {
				continue
			}
			err := tx.Model(&product.Product{}).Where("id = ?", *item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error
			if err != nil {
				return fmt.Errorf("failed to restore product stock: %w", err)
			}
			if item.VariantID != nil {
				err := tx.Model(&product.Variant{}).Where("id = ?", *item.VariantID).
					UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error
				if err != nil {
					return fmt.Errorf("failed to restore variant stock: %w", err)
				}
			}
			log := inventory.InventoryLog{
				ProductID: *item.ProductID,
				VariantID: item.VariantID,
				Change:    item.Quantity,
				Reason:    inventory.ReasonOrderCancelled,
				Note:      o.OrderNumber,
			}
			if err := tx.Create(&log).Error; err != nil {
				return fmt.Errorf("failed to record inventory log: %w", err)
			}
		}

		o.Status = StatusCancelled
		cancelled = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// UpdateStatus moves an order along the fulfilment flow. Cancellation goes
// through CancelOrder so stock is restored.
func (s *Service) UpdateStatus(orderID uint, status Status) (*Order, error) {
	if status == StatusCancelled {
		return s.CancelOrder(orderID)
	}

	var o Order
	if err := s.db.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, fmt.Errorf("order %d not found", orderID)
	}
	if o.IsCancelled() {
		return nil, fmt.Errorf("order %s is cancelled and cannot change status", o.OrderNumber)
	}
	if err := s.db.Model(&o).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	o.Status = status
	return &o, nil
}

// GetOrder loads one order with its items
func (s *Service) GetOrder(orderID uint) (*Order, error) {
	var o Order
	if err := s.db.Preload("Items").Preload("Items.Product").First(&o, orderID).Error; err != nil {
		return nil, fmt.Errorf("order %d not found", orderID)
	}
	return &o, nil
}

// ListOrders returns orders newest first, optionally filtered by status
func (s *Service) ListOrders(status *Status, limit, offset int) ([]Order, int64, error) {
	query := s.db.Model(&Order{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []Order
	err := query.Preload("Items").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

func findVariant(variants []product.Variant, id uint) *product.Variant {
	for i := range variants {
		if variants[i].ID == id {
			return &variants[i]
		}
	}
	return nil
}

// generateOrderNumber builds a unique order number, e.g. WS-20260829-4F2A9C1B.
// The prefix comes from configuration so parallel installations stay
// distinguishable.
func (s *Service) generateOrderNumber() string {
	prefix := "WS"
	if s.config != nil && s.config.App.OrderNumberPrefix != "" {
		prefix = s.config.App.OrderNumberPrefix
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), suffix)
}

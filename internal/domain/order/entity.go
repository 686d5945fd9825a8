// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/webshop-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Status represents the order status
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod identifies how an order was paid
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCOD      PaymentMethod = "cod" // cash on delivery
)

// Order represents a placed order. Amounts are stored as whole forints.
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	UserID      *uint  `gorm:"index" json:"user_id"` // nil for guest orders
	Email       string `gorm:"not null;size:255" json:"email"`
	Status      Status `gorm:"not null;default:'pending';index" json:"status"`

	// Financials
	TotalPrice      int64 `gorm:"not null" json:"total_price"`
	DiscountAmount  int64 `gorm:"default:0" json:"discount_amount"`
	LoyaltyDiscount int64 `gorm:"default:0" json:"loyalty_discount"`

	PaymentMethod PaymentMethod `gorm:"size:20" json:"payment_method"`
	CouponCode    *string       `gorm:"size:50" json:"coupon_code"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// OrderItem represents a line of an order. Name and Price are snapshots taken
// at purchase time; ProductID is nullable because the product may be deleted
// later while the order line survives.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OrderID   uint   `gorm:"not null;index" json:"order_id"`
	ProductID *uint  `gorm:"index" json:"product_id"`
	VariantID *uint  `gorm:"index" json:"variant_id"`
	Name      string `gorm:"not null;size:255" json:"name"`
	Price     int64  `gorm:"not null" json:"price"` // unit price at purchase time
	Quantity  int    `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`

	// Optional live join, used for category lookups in reporting
	Product *product.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// IsCancelled reports whether the order was cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// CanBeCancelled checks if the order may still transition to cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending || o.Status == StatusPaid
}

// GrossTotal returns the pre-discount value of the order
func (o *Order) GrossTotal() int64 {
	return o.TotalPrice + o.DiscountAmount + o.LoyaltyDiscount
}

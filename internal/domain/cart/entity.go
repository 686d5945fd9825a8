// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/webshop-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Cart represents a shopping cart persisted for a known user or guest
// session. UpdatedAt drives the abandoned-cart heuristic in reporting.
type Cart struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    *uint   `gorm:"index" json:"user_id"`
	SessionID *string `gorm:"size:64;index" json:"session_id"` // guest carts

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// CartItem represents a product (optionally a variant) placed in a cart
type CartItem struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	CartID    uint  `gorm:"not null;index" json:"cart_id"`
	ProductID uint  `gorm:"not null;index" json:"product_id"`
	VariantID *uint `gorm:"index" json:"variant_id"`
	Quantity  int   `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined for price lookups; cart items hold no price snapshot, the
	// current (sale) price applies until checkout.
	Product *product.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName overrides
func (Cart) TableName() string     { return "carts" }
func (CartItem) TableName() string { return "cart_items" }

// Value returns the current value of the cart line using the sale price
// when one is set
func (ci *CartItem) Value() int64 {
	if ci.Product == nil {
		return 0
	}
	return ci.Product.EffectivePrice() * int64(ci.Quantity)
}

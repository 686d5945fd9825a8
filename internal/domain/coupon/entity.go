// internal/domain/coupon/entity.go
package coupon

import (
	"time"

	"gorm.io/gorm"
)

// DiscountType determines how a coupon value is applied
type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

// Coupon represents a discount code. Usage is not tracked here; reporting
// derives usage from orders carrying the code.
type Coupon struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Code          string       `gorm:"uniqueIndex;not null;size:50" json:"code"`
	DiscountType  DiscountType `gorm:"not null;size:20" json:"discount_type"`
	Value         int64        `gorm:"not null" json:"value"` // percent (0-100) or forints
	MinOrderValue int64        `gorm:"default:0" json:"min_order_value"`
	IsActive      bool         `gorm:"default:true" json:"is_active"`
	ExpiresAt     *time.Time   `json:"expires_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Coupon) TableName() string { return "coupons" }

// IsExpired reports whether the coupon is past its expiry
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// DiscountFor computes the discount in forints for the given order subtotal
func (c *Coupon) DiscountFor(subtotal int64) int64 {
	var discount int64
	switch c.DiscountType {
	case DiscountTypePercent:
		discount = subtotal * c.Value / 100
	case DiscountTypeFixed:
		discount = c.Value
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

// internal/domain/inventory/entity.go
package inventory

import (
	"time"

	"github.com/your-org/webshop-backend/internal/domain/product"
)

// Reason classifies a stock delta
type Reason string

const (
	ReasonOrderPlaced      Reason = "ORDER_PLACED"
	ReasonSale             Reason = "SALE"
	ReasonRestock          Reason = "RESTOCK"
	ReasonManualAdjustment Reason = "MANUAL_ADJUSTMENT"
	ReasonOrderCancelled   Reason = "ORDER_CANCELLED"
)

// InventoryLog records a single signed stock delta for a product, optionally
// scoped to one of its variants. Logs are append-only; current stock lives on
// the product/variant rows and the log is the audit trail that lets reporting
// reconstruct period start stock arithmetically.
type InventoryLog struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	VariantID *uint  `gorm:"index" json:"variant_id"`
	Change    int    `gorm:"not null" json:"change"` // signed delta
	Reason    Reason `gorm:"not null;size:30;index" json:"reason"`
	Note      string `gorm:"size:255" json:"note"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Joins for display names in reporting
	Product *product.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Variant *product.Variant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

// TableName overrides
func (InventoryLog) TableName() string { return "inventory_logs" }

// IsOutflow reports whether the delta represents stock leaving through a sale
func (l *InventoryLog) IsOutflow() bool {
	return l.Change < 0 && (l.Reason == ReasonOrderPlaced || l.Reason == ReasonSale)
}

// IsRestock reports whether the delta represents stock coming back in
func (l *InventoryLog) IsRestock() bool {
	return l.Change > 0 && (l.Reason == ReasonRestock || l.Reason == ReasonOrderCancelled)
}

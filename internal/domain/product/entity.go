// internal/domain/product/entity.go
package product

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Product represents a sellable product. Prices are whole forints.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:255" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"not null;size:100;index" json:"category"`
	Price       int64  `gorm:"not null" json:"price"`
	SalePrice   *int64 `json:"sale_price"` // nil when not on sale
	Stock       int    `gorm:"default:0" json:"stock"`
	IsArchived  bool   `gorm:"default:false;index" json:"is_archived"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Variants []Variant `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variants,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`
}

// Attributes is an open key-value mapping describing a variant (size, color).
// Stored as a JSON column; no fixed schema is assumed.
type Attributes map[string]string

// Value implements driver.Valuer for JSON storage
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal variant attributes: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON storage
func (a *Attributes) Scan(value interface{}) error {
	if value == nil {
		*a = Attributes{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for variant attributes: %T", value)
	}
	return json.Unmarshal(raw, a)
}

// Variant represents a product variant with its own stock
type Variant struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ProductID  uint       `gorm:"not null;index" json:"product_id"`
	Attributes Attributes `gorm:"type:jsonb" json:"attributes"`
	Stock      int        `gorm:"default:0" json:"stock"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ReviewStatus represents the moderation state of a review
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Review represents a customer review awaiting or past moderation
type Review struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	ProductID uint         `gorm:"not null;index" json:"product_id"`
	UserID    *uint        `gorm:"index" json:"user_id"`
	Rating    int          `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Content   string       `gorm:"type:text" json:"content"`
	Status    ReviewStatus `gorm:"not null;default:'pending';index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Product) TableName() string { return "products" }
func (Variant) TableName() string { return "variants" }
func (Review) TableName() string  { return "reviews" }

// EffectivePrice returns the sale price when set, the regular price otherwise
func (p *Product) EffectivePrice() int64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// IsOutOfStock reports whether the product has no stock left
func (p *Product) IsOutOfStock() bool {
	return p.Stock <= 0
}

// Label returns a human readable variant label built from its attributes
func (v *Variant) Label() string {
	if len(v.Attributes) == 0 {
		return ""
	}
	label := ""
	for _, key := range []string{"size", "color"} {
		if val, ok := v.Attributes[key]; ok {
			if label != "" {
				label += " / "
			}
			label += val
		}
	}
	if label == "" {
		for _, val := range v.Attributes {
			if label != "" {
				label += " / "
			}
			label += val
		}
	}
	return label
}

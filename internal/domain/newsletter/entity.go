// internal/domain/newsletter/entity.go
package newsletter

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Subscriber represents a newsletter subscription
type Subscriber struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	IsActive bool   `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Subscriber) TableName() string { return "newsletter_subscribers" }

// BeforeCreate normalizes the email before insert
func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	return nil
}

// internal/domain/newsletter/service.go
package newsletter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/webshop-backend/internal/config"
	"gorm.io/gorm"
)

var ErrNotSubscribed = errors.New("email is not subscribed")

// Service handles newsletter subscriptions
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new newsletter service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// Subscribe adds an email to the list, reactivating a previous unsubscribe
func (s *Service) Subscribe(email string) (*Subscriber, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var sub Subscriber
	err := s.db.Where("email = ?", normalized).First(&sub).Error
	if err == nil {
		if sub.IsActive {
			return &sub, nil
		}
		if err := s.db.Model(&sub).Update("is_active", true).Error; err != nil {
			return nil, fmt.Errorf("failed to reactivate subscriber: %w", err)
		}
		sub.IsActive = true
		return &sub, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up subscriber: %w", err)
	}

	sub = Subscriber{Email: normalized, IsActive: true}
	if err := s.db.Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return &sub, nil
}

// Unsubscribe marks a subscriber inactive, keeping the row for history
func (s *Service) Unsubscribe(email string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))

	result := s.db.Model(&Subscriber{}).
		Where("email = ? AND is_active = ?", normalized, true).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to unsubscribe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotSubscribed
	}
	return nil
}

// ActiveCount returns the number of active subscribers
func (s *Service) ActiveCount() (int64, error) {
	var count int64
	err := s.db.Model(&Subscriber{}).Where("is_active = ?", true).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

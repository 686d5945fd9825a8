// internal/domain/coupon/service.go
package coupon

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/your-org/webshop-backend/internal/config"
	"gorm.io/gorm"
)

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponInactive = errors.New("coupon is not active")
	ErrCouponExpired  = errors.New("coupon has expired")
	ErrBelowMinimum   = errors.New("order value below coupon minimum")
)

// Service handles coupon business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new coupon service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ValidationResult is a validated coupon with the discount it would grant
type ValidationResult struct {
	Coupon   *Coupon `json:"coupon"`
	Discount int64   `json:"discount"`
}

// Validate checks a code against a cart subtotal and returns the discount
func (s *Service) Validate(code string, subtotal int64, now time.Time) (*ValidationResult, error) {
	var c Coupon
	err := s.db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to load coupon: %w", err)
	}

	if !c.IsActive {
		return nil, ErrCouponInactive
	}
	if c.IsExpired(now) {
		return nil, ErrCouponExpired
	}
	if subtotal < c.MinOrderValue {
		return nil, ErrBelowMinimum
	}

	return &ValidationResult{
		Coupon:   &c,
		Discount: c.DiscountFor(subtotal),
	}, nil
}

// CreateRequest holds new coupon data
type CreateRequest struct {
	Code          string       `json:"code" binding:"required"`
	DiscountType  DiscountType `json:"discount_type" binding:"required"`
	Value         int64        `json:"value" binding:"required,min=1"`
	MinOrderValue int64        `json:"min_order_value"`
	ExpiresAt     *time.Time   `json:"expires_at"`
}

// Create registers a new coupon, codes are stored uppercase
func (s *Service) Create(req *CreateRequest) (*Coupon, error) {
	if req.DiscountType == DiscountTypePercent && req.Value > 100 {
		return nil, fmt.Errorf("percent discount cannot exceed 100")
	}

	c := &Coupon{
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountType:  req.DiscountType,
		Value:         req.Value,
		MinOrderValue: req.MinOrderValue,
		IsActive:      true,
		ExpiresAt:     req.ExpiresAt,
	}
	if err := s.db.Create(c).Error; err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return c, nil
}

// Deactivate disables a coupon without deleting its usage history
func (s *Service) Deactivate(couponID uint) error {
	result := s.db.Model(&Coupon{}).Where("id = ?", couponID).Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate coupon: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}

// List returns all coupons, newest first
func (s *Service) List() ([]Coupon, error) {
	var coupons []Coupon
	if err := s.db.Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// internal/domain/coupon/entity_test.go
package coupon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponIsExpired(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.Local)

	t.Run("no expiry never expires", func(t *testing.T) {
		c := Coupon{Code: "OROK"}
		assert.False(t, c.IsExpired(now))
	})

	t.Run("future expiry", func(t *testing.T) {
		future := now.Add(24 * time.Hour)
		c := Coupon{Code: "NYAR10", ExpiresAt: &future}
		assert.False(t, c.IsExpired(now))
	})

	t.Run("past expiry", func(t *testing.T) {
		past := now.Add(-time.Minute)
		c := Coupon{Code: "TAVALY", ExpiresAt: &past}
		assert.True(t, c.IsExpired(now))
	})
}

func TestCouponDiscountFor(t *testing.T) {
	tests := []struct {
		name     string
		coupon   Coupon
		subtotal int64
		want     int64
	}{
		{
			name:     "percent discount",
			coupon:   Coupon{DiscountType: DiscountTypePercent, Value: 10},
			subtotal: 25000,
			want:     2500,
		},
		{
			name:     "fixed discount",
			coupon:   Coupon{DiscountType: DiscountTypeFixed, Value: 3000},
			subtotal: 25000,
			want:     3000,
		},
		{
			name:     "fixed discount capped at subtotal",
			coupon:   Coupon{DiscountType: DiscountTypeFixed, Value: 30000},
			subtotal: 25000,
			want:     25000,
		},
		{
			name:     "percent rounds down",
			coupon:   Coupon{DiscountType: DiscountTypePercent, Value: 15},
			subtotal: 999,
			want:     149,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.DiscountFor(tt.subtotal))
		})
	}
}

// internal/domain/report/revenue_test.go
package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/webshop-backend/internal/domain/order"
)

func testOrder(total int64, status order.Status, method order.PaymentMethod, createdAt time.Time) order.Order {
	return order.Order{
		TotalPrice:    total,
		Status:        status,
		PaymentMethod: method,
		CreatedAt:     createdAt,
	}
}

func TestBuildRevenueStats(t *testing.T) {
	day1 := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2026, time.August, 29, 16, 0, 0, 0, time.Local)

	orders := []order.Order{
		testOrder(10000, order.StatusCompleted, order.PaymentMethodCard, day1),
		testOrder(20000, order.StatusCompleted, order.PaymentMethodCard, day2),
		testOrder(5000, order.StatusPaid, order.PaymentMethodTransfer, day2),
	}
	orders[0].DiscountAmount = 1000
	orders[2].LoyaltyDiscount = 500

	stats := buildRevenueStats(orders, 17500)

	t.Run("totals", func(t *testing.T) {
		assert.Equal(t, int64(35000), stats.Total)
		assert.Equal(t, int64(17500), stats.Previous)
		assert.Equal(t, 100, stats.Change)
	})

	t.Run("gross equals net plus discounts", func(t *testing.T) {
		assert.Equal(t, stats.Total+stats.Discounts+stats.LoyaltyDiscounts, stats.Gross)
		assert.Equal(t, int64(1000), stats.Discounts)
		assert.Equal(t, int64(500), stats.LoyaltyDiscounts)
		assert.Equal(t, int64(36500), stats.Gross)
	})

	t.Run("payment method breakdown", func(t *testing.T) {
		require.Len(t, stats.ByPaymentMethod, 2)
		// sorted by amount descending
		assert.Equal(t, "card", stats.ByPaymentMethod[0].Method)
		assert.Equal(t, int64(30000), stats.ByPaymentMethod[0].Amount)
		assert.Equal(t, 2, stats.ByPaymentMethod[0].Orders)
		assert.Equal(t, "transfer", stats.ByPaymentMethod[1].Method)
		assert.Equal(t, int64(5000), stats.ByPaymentMethod[1].Amount)
	})

	t.Run("daily breakdown keyed by ISO date", func(t *testing.T) {
		require.Len(t, stats.ByDay, 2)
		assert.Equal(t, "2026-08-28", stats.ByDay[0].Date)
		assert.Equal(t, int64(10000), stats.ByDay[0].Amount)
		assert.Equal(t, 1, stats.ByDay[0].Orders)
		assert.Equal(t, "2026-08-29", stats.ByDay[1].Date)
		assert.Equal(t, int64(25000), stats.ByDay[1].Amount)
		assert.Equal(t, 2, stats.ByDay[1].Orders)
	})
}

func TestBuildRevenueStatsEmpty(t *testing.T) {
	stats := buildRevenueStats(nil, 0)

	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, 0, stats.Change)
	assert.Equal(t, stats.Total+stats.Discounts+stats.LoyaltyDiscounts, stats.Gross)
	assert.Empty(t, stats.ByPaymentMethod)
	assert.Empty(t, stats.ByDay)
}

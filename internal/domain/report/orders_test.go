// internal/domain/report/orders_test.go
package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/webshop-backend/internal/domain/order"
)

func TestBuildOrderStats(t *testing.T) {
	// Sunday morning and Monday evening
	sunday := time.Date(2026, time.August, 23, 9, 0, 0, 0, time.Local)
	monday := time.Date(2026, time.August, 24, 18, 30, 0, 0, time.Local)

	orders := []order.Order{
		testOrder(10000, order.StatusCompleted, order.PaymentMethodCard, sunday),
		testOrder(20000, order.StatusCompleted, order.PaymentMethodCard, monday),
		testOrder(30000, order.StatusPaid, order.PaymentMethodTransfer, monday),
		testOrder(40000, order.StatusShipped, order.PaymentMethodCOD, monday),
	}

	statusCounts := map[string]int{
		"completed": 2, "paid": 1, "shipped": 1, "cancelled": 1,
	}

	stats := buildOrderStats(orders, statusCounts, 2, 1, 5000)

	t.Run("counts and change", func(t *testing.T) {
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 2, stats.Previous)
		assert.Equal(t, 100, stats.Change)
		assert.Equal(t, 1, stats.Cancelled)
		assert.Equal(t, int64(5000), stats.CancelledValue)
	})

	t.Run("status breakdown includes cancelled", func(t *testing.T) {
		assert.Equal(t, 1, stats.ByStatus["cancelled"])
		assert.Equal(t, 2, stats.ByStatus["completed"])
	})

	t.Run("value statistics", func(t *testing.T) {
		assert.Equal(t, int64(25000), stats.AverageValue)
		// even length: element at floor(4/2) of the sorted list
		assert.Equal(t, int64(30000), stats.MedianValue)
		assert.Equal(t, int64(10000), stats.MinValue)
		assert.Equal(t, int64(40000), stats.MaxValue)
	})

	t.Run("completion rate", func(t *testing.T) {
		assert.Equal(t, 50, stats.CompletedRate)
	})

	t.Run("hour distribution has all slots", func(t *testing.T) {
		require.Len(t, stats.ByHour, 24)
		assert.Equal(t, HourBucket{Hour: 9, Count: 1}, stats.ByHour[9])
		assert.Equal(t, HourBucket{Hour: 18, Count: 3}, stats.ByHour[18])
		assert.Equal(t, HourBucket{Hour: 0, Count: 0}, stats.ByHour[0])
	})

	t.Run("weekday distribution is Sunday-first with Hungarian labels", func(t *testing.T) {
		require.Len(t, stats.ByDayOfWeek, 7)
		assert.Equal(t, DayOfWeekBucket{Day: "Vasárnap", Count: 1}, stats.ByDayOfWeek[0])
		assert.Equal(t, DayOfWeekBucket{Day: "Hétfő", Count: 3}, stats.ByDayOfWeek[1])
		assert.Equal(t, DayOfWeekBucket{Day: "Szombat", Count: 0}, stats.ByDayOfWeek[6])
	})
}

func TestBuildOrderStatsDailyScenario(t *testing.T) {
	// Three orders in a daily window, one of them cancelled. The cancelled
	// order never reaches the in-memory list; its aggregates arrive from the
	// store-side queries.
	when := time.Date(2026, time.August, 29, 11, 0, 0, 0, time.Local)
	inRange := []order.Order{
		testOrder(10000, order.StatusCompleted, order.PaymentMethodCard, when),
		testOrder(20000, order.StatusCompleted, order.PaymentMethodCard, when),
	}
	statusCounts := map[string]int{"completed": 2, "cancelled": 1}

	stats := buildOrderStats(inRange, statusCounts, 0, 1, 5000)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, int64(5000), stats.CancelledValue)
	assert.Equal(t, 100, stats.CompletedRate)

	revenue := buildRevenueStats(inRange, 0)
	assert.Equal(t, int64(30000), revenue.Total)
}

func TestBuildOrderStatsEmpty(t *testing.T) {
	stats := buildOrderStats(nil, nil, 0, 0, 0)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, int64(0), stats.MedianValue)
	assert.Equal(t, 0, stats.CompletedRate)
	assert.NotNil(t, stats.ByStatus)
	assert.Len(t, stats.ByHour, 24)
	assert.Len(t, stats.ByDayOfWeek, 7)
}

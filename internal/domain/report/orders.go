// internal/domain/report/orders.go
package report

import (
	"github.com/your-org/webshop-backend/internal/domain/order"
)

// buildOrderStats computes order counts, value statistics and time
// distributions. orders holds the in-range non-cancelled list; statusCounts
// comes from a separate store-side GROUP BY over the full period and so also
// carries cancelled orders. previousCount is the comparison-window count.
func buildOrderStats(orders []order.Order, statusCounts map[string]int, previousCount int, cancelledCount int, cancelledValue int64) OrderStats {
	stats := OrderStats{
		Total:          len(orders),
		Previous:       previousCount,
		Change:         PercentChange(int64(len(orders)), int64(previousCount)),
		ByStatus:       statusCounts,
		Cancelled:      cancelledCount,
		CancelledValue: cancelledValue,
	}
	if stats.ByStatus == nil {
		stats.ByStatus = map[string]int{}
	}

	values := make([]int64, 0, len(orders))
	hours := [24]int{}
	weekdays := [7]int{}
	completed := 0
	var sum int64

	for _, o := range orders {
		values = append(values, o.TotalPrice)
		sum += o.TotalPrice
		hours[o.CreatedAt.Hour()]++
		weekdays[int(o.CreatedAt.Weekday())]++
		if o.Status == order.StatusCompleted {
			completed++
		}
	}

	if len(orders) > 0 {
		stats.AverageValue = sum / int64(len(orders))
		stats.MedianValue = Median(values)
		stats.MinValue = values[0]
		stats.MaxValue = values[0]
		for _, v := range values {
			if v < stats.MinValue {
				stats.MinValue = v
			}
			if v > stats.MaxValue {
				stats.MaxValue = v
			}
		}
		stats.CompletedRate = sharePercent(int64(completed), int64(len(orders)))
	}

	stats.ByHour = make([]HourBucket, 24)
	for h := 0; h < 24; h++ {
		stats.ByHour[h] = HourBucket{Hour: h, Count: hours[h]}
	}

	stats.ByDayOfWeek = make([]DayOfWeekBucket, 7)
	for d := 0; d < 7; d++ {
		stats.ByDayOfWeek[d] = DayOfWeekBucket{Day: dayNames[d], Count: weekdays[d]}
	}

	return stats
}

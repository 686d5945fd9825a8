// internal/domain/report/cart.go
package report

import (
	"math"

	"github.com/your-org/webshop-backend/internal/domain/cart"
)

// buildCartStats approximates abandoned-cart value from the carts touched
// within the period that still hold at least one item. A cart that later
// converted to an order is counted all the same; this is a coarse heuristic,
// not a funnel state machine.
func buildCartStats(carts []cart.Cart) CartStats {
	stats := CartStats{}
	totalItems := 0

	for _, c := range carts {
		if len(c.Items) == 0 {
			continue
		}
		stats.AbandonedCount++
		for _, item := range c.Items {
			stats.AbandonedValue += item.Value()
			totalItems += item.Quantity
		}
	}

	if stats.AbandonedCount > 0 {
		stats.AverageValue = stats.AbandonedValue / int64(stats.AbandonedCount)
		stats.AverageItems = math.Round(float64(totalItems)/float64(stats.AbandonedCount)*10) / 10
	}
	return stats
}

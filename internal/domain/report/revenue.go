// internal/domain/report/revenue.go
package report

import (
	"sort"

	"github.com/your-org/webshop-backend/internal/domain/order"
)

// buildRevenueStats folds the in-range non-cancelled order list in a single
// pass, accumulating by payment method and by ISO calendar day. previousTotal
// is the store-side revenue sum of the comparison window.
func buildRevenueStats(orders []order.Order, previousTotal int64) RevenueStats {
	stats := RevenueStats{Previous: previousTotal}

	type methodAcc struct {
		amount int64
		count  int
	}
	type dayAcc struct {
		amount int64
		count  int
	}

	byMethod := make(map[string]*methodAcc)
	byDay := make(map[string]*dayAcc)

	for _, o := range orders {
		stats.Total += o.TotalPrice
		stats.Discounts += o.DiscountAmount
		stats.LoyaltyDiscounts += o.LoyaltyDiscount

		method := string(o.PaymentMethod)
		if acc, ok := byMethod[method]; ok {
			acc.amount += o.TotalPrice
			acc.count++
		} else {
			byMethod[method] = &methodAcc{amount: o.TotalPrice, count: 1}
		}

		day := FormatDateISO(o.CreatedAt)
		if acc, ok := byDay[day]; ok {
			acc.amount += o.TotalPrice
			acc.count++
		} else {
			byDay[day] = &dayAcc{amount: o.TotalPrice, count: 1}
		}
	}

	stats.Gross = stats.Total + stats.Discounts + stats.LoyaltyDiscounts
	stats.Change = PercentChange(stats.Total, previousTotal)

	stats.ByPaymentMethod = make([]PaymentMethodRevenue, 0, len(byMethod))
	for method, acc := range byMethod {
		stats.ByPaymentMethod = append(stats.ByPaymentMethod, PaymentMethodRevenue{
			Method: method,
			Amount: acc.amount,
			Orders: acc.count,
		})
	}
	sort.Slice(stats.ByPaymentMethod, func(i, j int) bool {
		return stats.ByPaymentMethod[i].Amount > stats.ByPaymentMethod[j].Amount
	})

	stats.ByDay = make([]DailyRevenue, 0, len(byDay))
	for day, acc := range byDay {
		stats.ByDay = append(stats.ByDay, DailyRevenue{
			Date:   day,
			Amount: acc.amount,
			Orders: acc.count,
		})
	}
	sort.Slice(stats.ByDay, func(i, j int) bool {
		return stats.ByDay[i].Date < stats.ByDay[j].Date
	})

	return stats
}

// internal/domain/report/engagement.go
package report

import (
	"sort"

	"github.com/your-org/webshop-backend/internal/domain/order"
	"github.com/your-org/webshop-backend/internal/domain/product"
)

// buildCouponStats derives coupon usage from the in-period non-cancelled
// orders. A coupon order's discount amount is attributed entirely to its
// code; no separate usage ledger is consulted.
func buildCouponStats(orders []order.Order) CouponStats {
	stats := CouponStats{}
	acc := make(map[string]*CouponUsage)

	for _, o := range orders {
		if o.CouponCode == nil || *o.CouponCode == "" {
			continue
		}
		stats.OrdersWithCoupon++
		stats.TotalDiscount += o.DiscountAmount

		u, ok := acc[*o.CouponCode]
		if !ok {
			u = &CouponUsage{Code: *o.CouponCode}
			acc[*o.CouponCode] = u
		}
		u.Uses++
		u.Discount += o.DiscountAmount
	}

	stats.ConversionRate = sharePercent(int64(stats.OrdersWithCoupon), int64(len(orders)))

	stats.TopCoupons = make([]CouponUsage, 0, len(acc))
	for _, u := range acc {
		stats.TopCoupons = append(stats.TopCoupons, *u)
	}
	sort.Slice(stats.TopCoupons, func(i, j int) bool {
		if stats.TopCoupons[i].Uses != stats.TopCoupons[j].Uses {
			return stats.TopCoupons[i].Uses > stats.TopCoupons[j].Uses
		}
		return stats.TopCoupons[i].Code < stats.TopCoupons[j].Code
	})
	if len(stats.TopCoupons) > 10 {
		stats.TopCoupons = stats.TopCoupons[:10]
	}
	return stats
}

// buildReviewStats groups the in-period reviews by moderation status and
// builds the zero-filled 1-5 rating histogram. The average rating only
// considers approved reviews.
func buildReviewStats(reviews []product.Review) ReviewStats {
	stats := ReviewStats{Histogram: make([]RatingBucket, 5)}
	for i := range stats.Histogram {
		stats.Histogram[i].Rating = i + 1
	}

	approvedSum := 0
	for _, r := range reviews {
		switch r.Status {
		case product.ReviewStatusApproved:
			stats.Approved++
			approvedSum += r.Rating
		case product.ReviewStatusRejected:
			stats.Rejected++
		default:
			stats.Pending++
		}
		if r.Rating >= 1 && r.Rating <= 5 {
			stats.Histogram[r.Rating-1].Count++
		}
	}

	stats.AverageRating = roundRating(approvedSum, stats.Approved)
	return stats
}

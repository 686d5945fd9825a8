// internal/domain/report/engagement_test.go
package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/webshop-backend/internal/domain/order"
	"github.com/your-org/webshop-backend/internal/domain/product"
)

func strPtr(s string) *string { return &s }

func TestBuildCouponStats(t *testing.T) {
	orders := []order.Order{
		{TotalPrice: 10000, CouponCode: strPtr("NYAR10"), DiscountAmount: 1000},
		{TotalPrice: 20000, CouponCode: strPtr("NYAR10"), DiscountAmount: 2000},
		{TotalPrice: 15000, CouponCode: strPtr("HUSEG"), DiscountAmount: 1500},
		{TotalPrice: 5000},
	}

	stats := buildCouponStats(orders)

	assert.Equal(t, 3, stats.OrdersWithCoupon)
	assert.Equal(t, int64(4500), stats.TotalDiscount)
	assert.Equal(t, 75, stats.ConversionRate)

	require.Len(t, stats.TopCoupons, 2)
	assert.Equal(t, "NYAR10", stats.TopCoupons[0].Code)
	assert.Equal(t, 2, stats.TopCoupons[0].Uses)
	assert.Equal(t, int64(3000), stats.TopCoupons[0].Discount)
	assert.Equal(t, "HUSEG", stats.TopCoupons[1].Code)
}

func TestBuildCouponStatsEmpty(t *testing.T) {
	stats := buildCouponStats(nil)
	assert.Equal(t, 0, stats.OrdersWithCoupon)
	assert.Equal(t, 0, stats.ConversionRate)
	assert.Empty(t, stats.TopCoupons)
}

func TestBuildReviewStats(t *testing.T) {
	reviews := []product.Review{
		{Rating: 5, Status: product.ReviewStatusApproved},
		{Rating: 4, Status: product.ReviewStatusApproved},
		{Rating: 1, Status: product.ReviewStatusRejected},
		{Rating: 3, Status: product.ReviewStatusPending},
	}

	stats := buildReviewStats(reviews)

	t.Run("status counts", func(t *testing.T) {
		assert.Equal(t, 2, stats.Approved)
		assert.Equal(t, 1, stats.Pending)
		assert.Equal(t, 1, stats.Rejected)
	})

	t.Run("average over approved only", func(t *testing.T) {
		assert.Equal(t, 4.5, stats.AverageRating)
	})

	t.Run("zero-filled histogram", func(t *testing.T) {
		require.Len(t, stats.Histogram, 5)
		assert.Equal(t, RatingBucket{Rating: 1, Count: 1}, stats.Histogram[0])
		assert.Equal(t, RatingBucket{Rating: 2, Count: 0}, stats.Histogram[1])
		assert.Equal(t, RatingBucket{Rating: 5, Count: 1}, stats.Histogram[4])
	})
}

func TestBuildReviewStatsEmpty(t *testing.T) {
	stats := buildReviewStats(nil)
	assert.Equal(t, float64(0), stats.AverageRating)
	require.Len(t, stats.Histogram, 5)
	for i, bucket := range stats.Histogram {
		assert.Equal(t, i+1, bucket.Rating)
		assert.Zero(t, bucket.Count)
	}
}

// internal/domain/report/cart_test.go
package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/webshop-backend/internal/domain/cart"
	"github.com/your-org/webshop-backend/internal/domain/product"
)

func int64Ptr(v int64) *int64 { return &v }

func TestBuildCartStats(t *testing.T) {
	regular := &product.Product{ID: 1, Price: 4000}
	onSale := &product.Product{ID: 2, Price: 5000, SalePrice: int64Ptr(3000)}

	carts := []cart.Cart{
		{
			Items: []cart.CartItem{
				{Product: regular, Quantity: 2}, // 8000
				{Product: onSale, Quantity: 1},  // 3000, sale price wins
			},
		},
		{
			Items: []cart.CartItem{
				{Product: onSale, Quantity: 3}, // 9000
			},
		},
		{Items: nil}, // empty carts do not count
	}

	stats := buildCartStats(carts)

	assert.Equal(t, 2, stats.AbandonedCount)
	assert.Equal(t, int64(20000), stats.AbandonedValue)
	assert.Equal(t, int64(10000), stats.AverageValue)
	assert.Equal(t, 3.0, stats.AverageItems)
}

func TestBuildCartStatsEmpty(t *testing.T) {
	stats := buildCartStats(nil)
	assert.Zero(t, stats.AbandonedCount)
	assert.Zero(t, stats.AbandonedValue)
	assert.Zero(t, stats.AverageValue)
	assert.Zero(t, stats.AverageItems)
}

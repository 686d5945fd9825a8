// internal/domain/report/products_test.go
package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/webshop-backend/internal/domain/inventory"
	"github.com/your-org/webshop-backend/internal/domain/order"
	"github.com/your-org/webshop-backend/internal/domain/product"
)

func uintPtr(v uint) *uint { return &v }

func salesFixture() []order.Order {
	mug := &product.Product{ID: 1, Name: "Bögre", Category: "Konyha"}
	shirt := &product.Product{ID: 2, Name: "Póló", Category: "Ruházat"}

	return []order.Order{
		{
			Status: order.StatusCompleted,
			Items: []order.OrderItem{
				{ProductID: uintPtr(1), Product: mug, Name: "Bögre", Price: 2000, Quantity: 5},
				{ProductID: uintPtr(2), Product: shirt, Name: "Póló", Price: 6000, Quantity: 2},
			},
		},
		{
			Status: order.StatusPaid,
			Items: []order.OrderItem{
				{ProductID: uintPtr(1), Product: mug, Name: "Bögre", Price: 2000, Quantity: 3},
				// product deleted since purchase, only the snapshot remains
				{ProductID: nil, Name: "Régi termék", Price: 1500, Quantity: 1},
			},
		},
	}
}

func TestBuildProductSales(t *testing.T) {
	sales := buildProductSales(salesFixture())
	require.Len(t, sales, 3)

	t.Run("sorted by quantity descending", func(t *testing.T) {
		assert.Equal(t, uint(1), sales[0].ProductID)
		assert.Equal(t, 8, sales[0].Quantity)
		assert.Equal(t, int64(16000), sales[0].Revenue)
	})

	t.Run("deleted products bucket under id 0", func(t *testing.T) {
		last := sales[len(sales)-1]
		assert.Equal(t, uint(0), last.ProductID)
		assert.Equal(t, "Régi termék", last.Name)
		assert.Equal(t, "Egyéb", last.Category)
		assert.Equal(t, int64(1500), last.Revenue)
	})
}

func TestTopAndWorstSellers(t *testing.T) {
	sales := []ProductSales{
		{ProductID: 1, Quantity: 10},
		{ProductID: 2, Quantity: 5},
		{ProductID: 3, Quantity: 1},
		{ProductID: 4, Quantity: 0},
	}

	top := topSellers(sales)
	worst := worstSellers(sales)

	t.Run("worst excludes zero quantity", func(t *testing.T) {
		for _, s := range worst {
			assert.NotZero(t, s.Quantity)
		}
		require.Len(t, worst, 3)
		assert.Equal(t, uint(3), worst[0].ProductID)
	})

	t.Run("top and worst never overlap with enough products", func(t *testing.T) {
		many := make([]ProductSales, 25)
		for i := range many {
			many[i] = ProductSales{ProductID: uint(i + 1), Quantity: 100 - i}
		}
		top10 := topSellers(many)
		worst10 := worstSellers(many)
		seen := map[uint]bool{}
		for _, s := range top10 {
			seen[s.ProductID] = true
		}
		for _, s := range worst10 {
			assert.False(t, seen[s.ProductID], "product %d in both lists", s.ProductID)
		}
	})

	_ = top
}

func TestBuildCategorySales(t *testing.T) {
	sales := buildProductSales(salesFixture())
	categories := buildCategorySales(sales)
	require.Len(t, categories, 3)

	t.Run("sorted by revenue", func(t *testing.T) {
		assert.Equal(t, "Konyha", categories[0].Category)
		assert.Equal(t, int64(16000), categories[0].Revenue)
	})

	t.Run("percentages sum to roughly 100", func(t *testing.T) {
		total := 0
		for _, c := range categories {
			total += c.Percent
		}
		assert.InDelta(t, 100, total, float64(len(categories)))
	})
}

func TestAverageUnitPrice(t *testing.T) {
	sales := []ProductSales{
		{ProductID: 1, Quantity: 10, Revenue: 10000}, // unit 1000
		{ProductID: 2, Quantity: 1, Revenue: 5000},   // unit 5000
	}
	// mean of per-product unit prices, not overall revenue/quantity
	assert.Equal(t, int64(3000), averageUnitPrice(sales))

	assert.Equal(t, int64(0), averageUnitPrice(nil))
	assert.Equal(t, int64(0), averageUnitPrice([]ProductSales{{Quantity: 0, Revenue: 100}}))
}

func TestBuildStockChanges(t *testing.T) {
	now := time.Now()
	products := []product.Product{
		{
			ID: 1, Name: "Bögre", Stock: 50,
			Variants: []product.Variant{
				{ID: 11, ProductID: 1, Stock: 20, Attributes: product.Attributes{"color": "kék"}},
			},
		},
		{ID: 2, Name: "Póló", Stock: 30}, // untouched
	}
	logs := []inventory.InventoryLog{
		{ProductID: 1, VariantID: uintPtr(11), Change: -10, Reason: inventory.ReasonOrderPlaced, CreatedAt: now},
		{ProductID: 1, Change: 5, Reason: inventory.ReasonRestock, CreatedAt: now},
		{ProductID: 1, Change: -2, Reason: inventory.ReasonManualAdjustment, CreatedAt: now},
	}

	changes := buildStockChanges(logs, products)

	t.Run("untouched products are filtered out", func(t *testing.T) {
		require.Len(t, changes, 1)
		assert.Equal(t, uint(1), changes[0].ProductID)
	})

	t.Run("classification and derived start stock", func(t *testing.T) {
		c := changes[0]
		assert.Equal(t, -7, c.TotalChange)
		assert.Equal(t, 50, c.CurrentStock)
		assert.Equal(t, 57, c.StartStock)
		assert.Equal(t, 10, c.OrdersSold)
		assert.Equal(t, 5, c.Restocked)
		assert.Equal(t, -2, c.ManualAdjustments)
	})

	t.Run("variant deltas are mirrored", func(t *testing.T) {
		require.Len(t, changes[0].Variants, 1)
		v := changes[0].Variants[0]
		assert.Equal(t, uint(11), v.VariantID)
		assert.Equal(t, -10, v.TotalChange)
		assert.Equal(t, 20, v.CurrentStock)
		assert.Equal(t, 30, v.StartStock)
		assert.Equal(t, 10, v.OrdersSold)
		assert.Equal(t, 0, v.Restocked)
	})
}

func TestBuildStockChangesSpecExample(t *testing.T) {
	// currentStock=50 with deltas -10 (ORDER_PLACED) and +5 (RESTOCK)
	products := []product.Product{{ID: 1, Name: "Teszt", Stock: 50}}
	logs := []inventory.InventoryLog{
		{ProductID: 1, Change: -10, Reason: inventory.ReasonOrderPlaced},
		{ProductID: 1, Change: 5, Reason: inventory.ReasonRestock},
	}

	changes := buildStockChanges(logs, products)
	require.Len(t, changes, 1)

	c := changes[0]
	assert.Equal(t, -5, c.TotalChange)
	assert.Equal(t, 55, c.StartStock)
	assert.Equal(t, 10, c.OrdersSold)
	assert.Equal(t, 5, c.Restocked)
}

func TestBuildStockChangesSortedByMagnitude(t *testing.T) {
	products := []product.Product{
		{ID: 1, Name: "A", Stock: 10},
		{ID: 2, Name: "B", Stock: 10},
	}
	logs := []inventory.InventoryLog{
		{ProductID: 1, Change: -3, Reason: inventory.ReasonOrderPlaced},
		{ProductID: 2, Change: 8, Reason: inventory.ReasonRestock},
	}

	changes := buildStockChanges(logs, products)
	require.Len(t, changes, 2)
	assert.Equal(t, uint(2), changes[0].ProductID)
	assert.Equal(t, uint(1), changes[1].ProductID)
}

func TestOrderCancelledCountsAsRestock(t *testing.T) {
	products := []product.Product{{ID: 1, Name: "A", Stock: 12}}
	logs := []inventory.InventoryLog{
		{ProductID: 1, Change: 2, Reason: inventory.ReasonOrderCancelled},
	}

	changes := buildStockChanges(logs, products)
	require.Len(t, changes, 1)
	assert.Equal(t, 2, changes[0].Restocked)
	assert.Equal(t, 10, changes[0].StartStock)
}

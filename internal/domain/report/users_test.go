// internal/domain/report/users_test.go
package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/webshop-backend/internal/domain/order"
	"github.com/your-org/webshop-backend/internal/domain/user"
)

func TestActiveUserIDs(t *testing.T) {
	orders := []order.Order{
		{UserID: uintPtr(1), TotalPrice: 1000},
		{UserID: uintPtr(2), TotalPrice: 2000},
		{UserID: uintPtr(1), TotalPrice: 3000},
		{UserID: nil, TotalPrice: 4000}, // guest orders do not count
	}

	ids := activeUserIDs(orders)
	assert.ElementsMatch(t, []uint{1, 2}, ids)
}

func TestBuildTopSpenders(t *testing.T) {
	orders := []order.Order{
		{UserID: uintPtr(1), TotalPrice: 10000},
		{UserID: uintPtr(1), TotalPrice: 5000},
		{UserID: uintPtr(2), TotalPrice: 20000},
		{UserID: nil, TotalPrice: 99999},
	}
	lookup := map[uint]user.User{
		2: {ID: 2, Name: "Kiss Anna", Email: "anna@example.com"},
		// user 1 was deleted since ordering
	}

	spenders := buildTopSpenders(orders, lookup)
	require.Len(t, spenders, 2)

	t.Run("sorted by summed spend", func(t *testing.T) {
		assert.Equal(t, uint(2), spenders[0].UserID)
		assert.Equal(t, int64(20000), spenders[0].Total)
		assert.Equal(t, 1, spenders[0].Orders)
		assert.Equal(t, uint(1), spenders[1].UserID)
		assert.Equal(t, int64(15000), spenders[1].Total)
		assert.Equal(t, 2, spenders[1].Orders)
	})

	t.Run("name resolution with fallback", func(t *testing.T) {
		assert.Equal(t, "Kiss Anna", spenders[0].Name)
		assert.Equal(t, "anna@example.com", spenders[0].Email)
		assert.Equal(t, "N/A", spenders[1].Name)
		assert.Equal(t, "N/A", spenders[1].Email)
	})
}

func TestBuildTopSpendersKeepsTen(t *testing.T) {
	orders := make([]order.Order, 0, 15)
	for i := 1; i <= 15; i++ {
		id := uint(i)
		orders = append(orders, order.Order{UserID: &id, TotalPrice: int64(i * 1000)})
	}

	spenders := buildTopSpenders(orders, nil)
	require.Len(t, spenders, 10)
	assert.Equal(t, int64(15000), spenders[0].Total)
	assert.Equal(t, int64(6000), spenders[9].Total)
}

func TestBuildUserStats(t *testing.T) {
	orders := []order.Order{
		{UserID: uintPtr(7), TotalPrice: 1000},
	}

	stats := buildUserStats(orders, 120, 10, 5, map[uint]user.User{7: {ID: 7, Name: "Teszt Elek", Email: "elek@example.com"}})

	assert.Equal(t, int64(120), stats.Total)
	assert.Equal(t, int64(10), stats.New)
	assert.Equal(t, int64(5), stats.Previous)
	assert.Equal(t, 100, stats.Change)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 0, stats.Returning, "returning users are not computed")
	require.Len(t, stats.TopSpenders, 1)
	assert.Equal(t, "Teszt Elek", stats.TopSpenders[0].Name)
}

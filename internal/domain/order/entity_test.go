// internal/domain/order/entity_test.go
package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCanBeCancelled(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusPaid, true},
		{StatusShipped, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			o := Order{Status: tt.status}
			assert.Equal(t, tt.want, o.CanBeCancelled())
		})
	}
}

func TestOrderGrossTotal(t *testing.T) {
	o := Order{
		TotalPrice:      30000,
		DiscountAmount:  5000,
		LoyaltyDiscount: 1500,
	}
	assert.Equal(t, int64(36500), o.GrossTotal())
}

func TestOrderIsCancelled(t *testing.T) {
	assert.True(t, (&Order{Status: StatusCancelled}).IsCancelled())
	assert.False(t, (&Order{Status: StatusPaid}).IsCancelled())
}

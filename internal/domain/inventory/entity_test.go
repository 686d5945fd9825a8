// internal/domain/inventory/entity_test.go
package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryLogIsOutflow(t *testing.T) {
	assert.True(t, (&InventoryLog{Change: -3, Reason: ReasonOrderPlaced}).IsOutflow())
	assert.True(t, (&InventoryLog{Change: -1, Reason: ReasonSale}).IsOutflow())

	// positive change is never an outflow, whatever the reason says
	assert.False(t, (&InventoryLog{Change: 2, Reason: ReasonOrderPlaced}).IsOutflow())
	assert.False(t, (&InventoryLog{Change: -2, Reason: ReasonManualAdjustment}).IsOutflow())
}

func TestInventoryLogIsRestock(t *testing.T) {
	assert.True(t, (&InventoryLog{Change: 5, Reason: ReasonRestock}).IsRestock())
	assert.True(t, (&InventoryLog{Change: 1, Reason: ReasonOrderCancelled}).IsRestock())

	assert.False(t, (&InventoryLog{Change: -5, Reason: ReasonRestock}).IsRestock())
	assert.False(t, (&InventoryLog{Change: 5, Reason: ReasonManualAdjustment}).IsRestock())
}

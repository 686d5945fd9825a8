// internal/domain/product/entity_test.go
package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductEffectivePrice(t *testing.T) {
	sale := int64(3000)

	regular := Product{Price: 5000}
	assert.Equal(t, int64(5000), regular.EffectivePrice())

	onSale := Product{Price: 5000, SalePrice: &sale}
	assert.Equal(t, int64(3000), onSale.EffectivePrice())
}

func TestProductIsOutOfStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 0}).IsOutOfStock())
	assert.False(t, (&Product{Stock: 3}).IsOutOfStock())
}

func TestVariantLabel(t *testing.T) {
	t.Run("known keys in fixed order", func(t *testing.T) {
		v := Variant{Attributes: Attributes{"color": "fekete", "size": "M"}}
		assert.Equal(t, "M / fekete", v.Label())
	})

	t.Run("single attribute", func(t *testing.T) {
		v := Variant{Attributes: Attributes{"size": "XL"}}
		assert.Equal(t, "XL", v.Label())
	})

	t.Run("empty attributes", func(t *testing.T) {
		v := Variant{}
		assert.Equal(t, "", v.Label())
	})
}

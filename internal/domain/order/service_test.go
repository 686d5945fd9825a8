// internal/domain/order/service_test.go
package order

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/webshop-backend/internal/config"
)

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]+-\d{8}-[0-9A-F]{8}$`)

	t.Run("configured prefix", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.OrderNumberPrefix = "SHOP"
		s := NewService(nil, cfg)

		num := s.generateOrderNumber()
		assert.Regexp(t, pattern, num)
		assert.Equal(t, "SHOP-", num[:5])
	})

	t.Run("default prefix", func(t *testing.T) {
		s := NewService(nil, &config.Config{})

		num := s.generateOrderNumber()
		assert.Regexp(t, pattern, num)
		assert.Equal(t, "WS-", num[:3])
	})

	t.Run("unique per call", func(t *testing.T) {
		s := NewService(nil, &config.Config{})
		assert.NotEqual(t, s.generateOrderNumber(), s.generateOrderNumber())
	})
}

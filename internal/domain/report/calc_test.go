// internal/domain/report/calc_test.go
package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     int
	}{
		{"growth from zero is 100", 500, 0, 100},
		{"zero to zero is 0", 0, 0, 0},
		{"doubling is 100", 200, 100, 100},
		{"halving is -50", 50, 100, -50},
		{"rounding", 105, 100, 5},
		{"rounds half away", 1005, 1000, 1}, // 0.5 rounds to 1
		{"full drop is -100", 0, 100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentChange(tt.current, tt.previous))
		})
	}
}

func TestMedian(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, int64(0), Median(nil))
	})

	t.Run("single element", func(t *testing.T) {
		assert.Equal(t, int64(42), Median([]int64{42}))
	})

	t.Run("odd length takes the middle", func(t *testing.T) {
		assert.Equal(t, int64(2000), Median([]int64{3000, 1000, 2000}))
	})

	t.Run("even length takes the upper middle, not the average", func(t *testing.T) {
		// index 4/2 = 2 of the sorted list, so 3000 rather than 2500
		assert.Equal(t, int64(3000), Median([]int64{1000, 2000, 3000, 4000}))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		values := []int64{3, 1, 2}
		Median(values)
		assert.Equal(t, []int64{3, 1, 2}, values)
	})
}

func TestSharePercent(t *testing.T) {
	assert.Equal(t, 0, sharePercent(5, 0))
	assert.Equal(t, 50, sharePercent(1, 2))
	assert.Equal(t, 33, sharePercent(1, 3))
	assert.Equal(t, 100, sharePercent(2, 2))
}

// internal/domain/report/format_test.go
package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0 Ft"},
		{999, "999 Ft"},
		{1000, "1 000 Ft"},
		{1234567, "1 234 567 Ft"},
		{-25000, "-25 000 Ft"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12%", FormatPercent(12))
	assert.Equal(t, "-5%", FormatPercent(-5))
	assert.Equal(t, "0%", FormatPercent(0))
}

func TestFormatDateLong(t *testing.T) {
	d := time.Date(2026, time.August, 29, 15, 0, 0, 0, time.Local)
	assert.Equal(t, "2026. augusztus 29.", FormatDateLong(d))

	newYear := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2027. január 1.", FormatDateLong(newYear))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Vasárnap", DayName(time.Sunday))
	assert.Equal(t, "Szombat", DayName(time.Saturday))
}

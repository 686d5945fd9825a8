// internal/domain/report/daterange_test.go
package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRange(t *testing.T) {
	ref := time.Date(2026, time.August, 29, 14, 30, 45, 0, time.Local)

	t.Run("end is normalized to end of day", func(t *testing.T) {
		rng := ResolveRange(PeriodDaily, ref)
		assert.Equal(t, 23, rng.End.Hour())
		assert.Equal(t, 59, rng.End.Minute())
		assert.Equal(t, 59, rng.End.Second())
		assert.Equal(t, int(999*time.Millisecond), rng.End.Nanosecond())
	})

	t.Run("start is normalized to start of day", func(t *testing.T) {
		for _, p := range []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly} {
			rng := ResolveRange(p, ref)
			assert.Equal(t, 0, rng.Start.Hour(), "period %s", p)
			assert.Equal(t, 0, rng.Start.Minute(), "period %s", p)
			assert.Equal(t, 0, rng.Start.Second(), "period %s", p)
			assert.Equal(t, 0, rng.Start.Nanosecond(), "period %s", p)
		}
	})

	t.Run("window spans exactly one unit per period", func(t *testing.T) {
		daily := ResolveRange(PeriodDaily, ref)
		assert.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.Local), daily.Start)

		weekly := ResolveRange(PeriodWeekly, ref)
		assert.Equal(t, time.Date(2026, time.August, 22, 0, 0, 0, 0, time.Local), weekly.Start)

		monthly := ResolveRange(PeriodMonthly, ref)
		assert.Equal(t, time.Date(2026, time.July, 29, 0, 0, 0, 0, time.Local), monthly.Start)

		yearly := ResolveRange(PeriodYearly, ref)
		assert.Equal(t, time.Date(2025, time.August, 29, 0, 0, 0, 0, time.Local), yearly.Start)
	})

	t.Run("monthly window accounts for calendar month length", func(t *testing.T) {
		endOfMarch := time.Date(2026, time.March, 31, 10, 0, 0, 0, time.Local)
		rng := ResolveRange(PeriodMonthly, endOfMarch)
		// AddDate normalization: March 31 minus one month lands on March 3
		assert.Equal(t, time.March, rng.Start.Month())
		assert.True(t, rng.Start.Before(rng.End))
	})
}

func TestResolvePreviousRange(t *testing.T) {
	ref := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local)

	for _, p := range []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly} {
		current := ResolveRange(p, ref)
		previous := ResolvePreviousRange(current)

		// no gap, no overlap
		assert.Equal(t, current.Start.Add(-time.Millisecond), previous.End, "period %s", p)
		// identical duration
		assert.Equal(t, current.Duration(), previous.Duration(), "period %s", p)
		// strictly before the current window
		assert.True(t, previous.End.Before(current.Start), "period %s", p)
	}
}

func TestDateRangeContains(t *testing.T) {
	rng := ResolveRange(PeriodDaily, time.Date(2026, time.August, 29, 12, 0, 0, 0, time.Local))

	assert.True(t, rng.Contains(rng.Start))
	assert.True(t, rng.Contains(rng.End))
	assert.False(t, rng.Contains(rng.Start.Add(-time.Millisecond)))
	assert.False(t, rng.Contains(rng.End.Add(time.Millisecond)))
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("weekly")
	require.NoError(t, err)
	assert.Equal(t, PeriodWeekly, p)

	_, err = ParsePeriod("hourly")
	assert.Error(t, err)
}

func TestPeriodLabels(t *testing.T) {
	assert.Equal(t, "Napi", PeriodDaily.Label())
	assert.Equal(t, "Heti", PeriodWeekly.Label())
	assert.Equal(t, "Havi", PeriodMonthly.Label())
	assert.Equal(t, "Éves", PeriodYearly.Label())
}

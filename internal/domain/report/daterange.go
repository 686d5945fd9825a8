// internal/domain/report/daterange.go
package report

import "time"

// DateRange is a closed report window [Start, End]
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the exact length of the window
func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains reports whether t falls inside the window
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ResolveRange computes the report window for a period anchored at the
// reference date. End is the reference date normalized to end-of-day
// (23:59:59.999), start is end minus one unit of the period normalized to
// start-of-day. All normalization uses the reference date's local calendar
// day boundaries; timezone is a fixed assumption, not configurable.
func ResolveRange(period Period, reference time.Time) DateRange {
	end := endOfDay(reference)

	var base time.Time
	switch period {
	case PeriodWeekly:
		base = end.AddDate(0, 0, -7)
	case PeriodMonthly:
		base = end.AddDate(0, -1, 0)
	case PeriodYearly:
		base = end.AddDate(-1, 0, 0)
	default: // daily
		base = end.AddDate(0, 0, -1)
	}

	return DateRange{Start: startOfDay(base), End: end}
}

// ResolvePreviousRange computes the comparison window: identical duration to
// the current window, ending exactly where the current window begins. No gap,
// no overlap.
func ResolvePreviousRange(current DateRange) DateRange {
	end := current.Start.Add(-time.Millisecond)
	return DateRange{Start: end.Add(-current.Duration()), End: end}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

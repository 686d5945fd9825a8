// internal/domain/report/period.go
package report

import (
	"fmt"
	"time"
)

// Period is the granularity of a report's time window
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// periodLabels are the fixed Hungarian display labels. The exact strings are
// part of the public contract.
var periodLabels = map[Period]string{
	PeriodDaily:   "Napi",
	PeriodWeekly:  "Heti",
	PeriodMonthly: "Havi",
	PeriodYearly:  "Éves",
}

// ParsePeriod validates a raw period string
func ParsePeriod(raw string) (Period, error) {
	p := Period(raw)
	if _, ok := periodLabels[p]; !ok {
		return "", fmt.Errorf("invalid report period: %q", raw)
	}
	return p, nil
}

// Label returns the Hungarian display label of the period
func (p Period) Label() string {
	return periodLabels[p]
}

// Clock supplies the current time. Report generation takes it as an explicit
// dependency so tests can use deterministic reference dates instead of
// patching global state.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by the system time
type SystemClock struct{}

// Now returns the current system time
func (SystemClock) Now() time.Time { return time.Now() }

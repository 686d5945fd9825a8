// internal/domain/report/format.go
package report

import (
	"fmt"
	"strconv"
	"time"
)

// Hungarian calendar labels. Day names are Sunday-first to match the
// weekday indexing used by the day-of-week distribution; all of these
// strings are part of the public contract.
var (
	dayNames = [7]string{"Vasárnap", "Hétfő", "Kedd", "Szerda", "Csütörtök", "Péntek", "Szombat"}

	monthNames = [12]string{
		"január", "február", "március", "április", "május", "június",
		"július", "augusztus", "szeptember", "október", "november", "december",
	}
)

// FormatCurrency renders an amount in forints with space thousands
// separators, e.g. 1234567 -> "1 234 567 Ft".
func FormatCurrency(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return "-" + string(grouped) + " Ft"
	}
	return string(grouped) + " Ft"
}

// FormatPercent renders a percentage value, e.g. 12 -> "12%"
func FormatPercent(value int) string {
	return fmt.Sprintf("%d%%", value)
}

// FormatDateLong renders a long-form Hungarian date, e.g. "2026. augusztus 29."
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%d. %s %d.", t.Year(), monthNames[t.Month()-1], t.Day())
}

// FormatDateISO renders the calendar day as an ISO date string; daily
// revenue breakdowns are keyed by this format.
func FormatDateISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayName returns the Hungarian day name for a weekday (Sunday-first)
func DayName(weekday time.Weekday) string {
	return dayNames[int(weekday)]
}

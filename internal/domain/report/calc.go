// internal/domain/report/calc.go
package report

import (
	"math"
	"sort"
)

// PercentChange returns the rounded percentage change between two values.
// A previous value of 0 yields 100 when the current value is positive and 0
// otherwise, so the calculation never divides by zero.
func PercentChange(current, previous int64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// Median returns the element at index n/2 of the sorted value list.
// Even-length lists therefore take the upper of the two middle elements
// instead of averaging them; callers depend on this exact rule, do not
// change it to a true median.
func Median(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[len(sorted)/2]
}

// sharePercent returns the rounded percentage part/total, 0 when total is 0
func sharePercent(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func roundRating(sum int, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}

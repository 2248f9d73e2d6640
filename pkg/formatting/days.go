// Package formatting provides human-readable formatting and parsing
// utilities for common value types such as byte sizes and day counts.
package formatting

import (
	"fmt"
	"math"
	"strconv"
)

// FormatDays renders a fractional day count with a pluralized unit,
// e.g. "1 day", "2.5 days".
func FormatDays(days float64) string {
	value := strconv.FormatFloat(days, 'f', -1, 64)
	if days == 1 {
		return value + " day"
	}
	return value + " days"
}

// CeilDay rounds a fractional day position up to its calendar day.
func CeilDay(day float64) int {
	return int(math.Ceil(day))
}

// DayRange renders an inclusive calendar-day span, ceiling-rounding both
// endpoints, e.g. DayRange(2.5, 3.5) == "Days 3-4".
func DayRange(start, end float64) string {
	return fmt.Sprintf("Days %d-%d", CeilDay(start), CeilDay(end))
}

// Package analytics derives productivity view-models from an in-memory task
// snapshot. Every function is pure: the same tasks and reference date always
// produce the same result, and no state survives between calls. Degenerate
// inputs (empty snapshots, inverted ranges, zero denominators) yield defined
// zero-states instead of errors so a dashboard render can never fault.
package analytics

import (
	"math"
	"time"
)

// DayFormat is the calendar-day key used for all date bucketing (UTC).
const DayFormat = "2006-01-02"

// dayKey returns the UTC calendar-day key for a timestamp.
func dayKey(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// startOfDay truncates a timestamp to midnight UTC.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the signed number of whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours() / 24)
}

// roundPct rounds a percentage to the nearest whole number.
func roundPct(v float64) int {
	return int(math.Round(v))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ratio returns numerator/denominator × 100, or 0 when the denominator is
// zero.
func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

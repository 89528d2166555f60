// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// WholeMinutes returns the number of complete minutes in d, truncating
// any fractional remainder. Negative durations truncate toward zero
func WholeMinutes(d time.Duration) int {
	return int(d / time.Minute)
}

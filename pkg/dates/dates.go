// Package dates defines the calendar arithmetic capability the year picker
// consumes, plus the default Gregorian implementation backed by time.Time.
package dates

import (
	"time"
)

// Adapter supplies every date operation the picker needs. The picker never
// touches time.Time arithmetic directly; swapping the adapter swaps the
// calendar system.
type Adapter interface {
	// Today returns the current date in the adapter's location.
	Today() time.Time

	// Parse deserializes a date-like value. The second return is false when
	// the value is not date-like or does not represent a valid date.
	Parse(value any) (time.Time, bool)

	// Valid reports whether t represents a usable date.
	Valid(t time.Time) bool

	// Clamp constrains t into [min, max]. Nil bounds are open.
	Clamp(t time.Time, min, max *time.Time) time.Time

	Year(t time.Time) int
	Month(t time.Time) time.Month
	Day(t time.Time) int

	// Date constructs a date from components.
	Date(year int, month time.Month, day int) time.Time

	// DaysInMonth returns the number of days in t's month.
	DaysInMonth(t time.Time) int

	// AddYears shifts t by a number of calendar years, clamping the day to
	// the target month's length (Feb 29 + 1y lands on Feb 28).
	AddYears(t time.Time, years int) time.Time

	// AddDays shifts t by a number of calendar days.
	AddDays(t time.Time, days int) time.Time

	// Compare orders two dates: -1, 0 or +1.
	Compare(a, b time.Time) int

	// YearName renders the year of t for display, using the adapter's
	// locale conventions.
	YearName(t time.Time) string
}

package dates

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Layouts accepted when deserializing string dates.
const (
	layoutISO      = "2006-01-02"
	layoutISOLoose = "2006-1-2"
	layoutYear     = "2006"
)

// Gregorian is the default Adapter, operating on time.Time in a fixed
// location with locale-aware year names.
type Gregorian struct {
	loc     *time.Location
	printer *message.Printer

	// now is overridable for tests.
	now func() time.Time
}

// NewGregorian builds an adapter for the given locale. Unknown or empty
// locales fall back to English.
func NewGregorian(locale string) *Gregorian {
	tag := language.English
	if strings.TrimSpace(locale) != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	return &Gregorian{
		loc:     time.Local,
		printer: message.NewPrinter(tag),
		now:     time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (g *Gregorian) WithNow(now func() time.Time) *Gregorian {
	g.now = now
	return g
}

// Today returns the current date, truncated to midnight.
func (g *Gregorian) Today() time.Time {
	t := g.now().In(g.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, g.loc)
}

// Parse deserializes time.Time values, their pointers, ISO-ish strings, and
// bare year numbers.
func (g *Gregorian) Parse(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, g.Valid(v)
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, g.Valid(*v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range []string{layoutISO, layoutISOLoose, time.RFC3339, layoutYear} {
			if t, err := time.ParseInLocation(layout, s, g.loc); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int:
		return g.Date(v, time.January, 1), true
	default:
		return time.Time{}, false
	}
}

// Valid reports whether t is usable. The zero time is the only rejected
// value; negative years are legal.
func (g *Gregorian) Valid(t time.Time) bool {
	return !t.IsZero()
}

// Clamp constrains t into [min, max].
func (g *Gregorian) Clamp(t time.Time, min, max *time.Time) time.Time {
	if min != nil && t.Before(*min) {
		return *min
	}
	if max != nil && t.After(*max) {
		return *max
	}
	return t
}

func (g *Gregorian) Year(t time.Time) int {
	return t.Year()
}

func (g *Gregorian) Month(t time.Time) time.Month {
	return t.Month()
}

func (g *Gregorian) Day(t time.Time) int {
	return t.Day()
}

// Date constructs a date at midnight in the adapter's location.
func (g *Gregorian) Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, g.loc)
}

// DaysInMonth returns the length of t's month.
func (g *Gregorian) DaysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// AddYears shifts t by calendar years. The day is clamped to the target
// month's length so Feb 29 never rolls into March.
func (g *Gregorian) AddYears(t time.Time, years int) time.Time {
	year := t.Year() + years
	day := t.Day()
	if max := g.DaysInMonth(g.Date(year, t.Month(), 1)); day > max {
		day = max
	}
	return time.Date(year, t.Month(), day, 0, 0, 0, 0, t.Location())
}

// AddDays shifts t by calendar days.
func (g *Gregorian) AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// Compare orders two dates.
func (g *Gregorian) Compare(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// YearName renders t's year in the adapter's locale, without digit grouping.
func (g *Gregorian) YearName(t time.Time) string {
	return g.printer.Sprint(number.Decimal(t.Year(), number.NoSeparator()))
}

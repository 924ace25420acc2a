// Package caldate provides an explicit calendar-date value type.
//
// Recurrence matching works at day granularity. Keeping the calendar date
// (year/month/day) separate from time-of-day and duration, and composing the
// two only when an occurrence is materialized, avoids the rollover bugs that
// come from doing date arithmetic on full timestamps.
package caldate

import (
	"fmt"
	"time"
)

// Date is a calendar date without time-of-day or location.
// The zero value is not a valid date; use IsZero to detect it.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for the given year, month and day. Out-of-range
// values are normalized the same way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse parses a date in YYYYMMDD form. A trailing time part
// (e.g. "20240101T090000Z") is tolerated and ignored.
func Parse(s string) (Date, error) {
	if len(s) > 8 {
		s = s[:8]
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return Date{}, fmt.Errorf("caldate: invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// String formats the date as YYYYMMDD.
func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of d in the given location.
// A nil location means UTC.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// WithClock applies ref's time-of-day and location to d. This is the
// composition step that turns a matched calendar day plus an anchor
// timestamp into a concrete occurrence start.
func (d Date) WithClock(ref time.Time) time.Time {
	return time.Date(d.Year, d.Month, d.Day,
		ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time(time.UTC).AddDate(0, 0, n))
}

// AddMonths returns the date n months after d, with time.Date's
// normalization (Jan 31 + 1 month = Mar 2 or 3).
func (d Date) AddMonths(n int) Date {
	return FromTime(d.Time(time.UTC).AddDate(0, n, 0))
}

// AddYears returns the date n years after d.
func (d Date) AddYears(n int) Date {
	return FromTime(d.Time(time.UTC).AddDate(n, 0, 0))
}

// DaysSince returns the number of whole days from other to d.
// Negative when d is before other. Both dates are treated as UTC
// midnights, so the result is exact regardless of DST.
func (d Date) DaysSince(other Date) int {
	return int(d.Time(time.UTC).Sub(other.Time(time.UTC)) / (24 * time.Hour))
}

// MonthsSince returns the signed whole-month difference from other to d,
// ignoring the day-of-month of either date.
func (d Date) MonthsSince(other Date) int {
	return (d.Year-other.Year)*12 + int(d.Month) - int(other.Month)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Compare returns -1 when d is before other, 0 when equal, +1 when after.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Min returns the earlier of a and b.
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

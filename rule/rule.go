// Package rule models recurrence rules: a structured representation, its
// textual grammar (a restricted profile of the RFC 5545 RRULE value), a
// natural-language recognizer, a day-granularity matcher and a validator.
//
// Everything in this package is a pure function of its inputs; rules are
// plain values and are never mutated after construction.
package rule

import (
	"time"

	"github.com/samber/mo"

	"github.com/kalenda/recur/caldate"
)

// Frequency is the base recurrence frequency.
type Frequency string

const (
	FreqDaily   Frequency = "DAILY"
	FreqWeekly  Frequency = "WEEKLY"
	FreqMonthly Frequency = "MONTHLY"
	FreqYearly  Frequency = "YEARLY"
)

// Valid reports whether f is one of the four supported frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
		return true
	}
	return false
}

// Weekday is a two-letter RFC 5545 weekday code (MO..SU).
type Weekday string

const (
	Monday    Weekday = "MO"
	Tuesday   Weekday = "TU"
	Wednesday Weekday = "WE"
	Thursday  Weekday = "TH"
	Friday    Weekday = "FR"
	Saturday  Weekday = "SA"
	Sunday    Weekday = "SU"
)

var weekdayCodes = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf returns the code for a time.Weekday.
func WeekdayOf(d time.Weekday) Weekday {
	return weekdayCodes[d]
}

// Valid reports whether w is a recognized weekday code.
func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Rule is a structured recurrence rule. The zero value has no frequency and
// matches nothing useful; rules normally come from Parse, Recognize or a
// literal with at least Freq set.
//
// Count and Until are the two termination modes. Both may be stored, but
// Count takes precedence during generation; whichever bound is reached
// first stops the walk.
type Rule struct {
	Freq     Frequency
	Interval int // step multiplier for Freq; values < 1 are treated as 1

	ByDay      []Weekday    // restrict to these weekdays
	ByMonthDay []int        // restrict MONTHLY to these days of month (1-31)
	ByMonth    []time.Month // restrict YEARLY to these months

	Count mo.Option[int]          // total occurrences to generate
	Until mo.Option[caldate.Date] // inclusive last occurrence date
}

// interval returns the effective step, defaulting to 1.
func (r Rule) interval() int {
	if r.Interval < 1 {
		return 1
	}
	return r.Interval
}

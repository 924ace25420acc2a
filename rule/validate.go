package rule

import (
	"fmt"
	"time"

	"github.com/kalenda/recur/caldate"
)

// Result is the outcome of validating a rule.
type Result struct {
	Valid  bool
	Errors []string
}

// Validate checks r against the constraints a rule must satisfy before
// being persisted. It never mutates r and never fails generation on its
// own; callers invoke it as a separate gate.
func Validate(r Rule) Result {
	return ValidateAt(r, time.Now())
}

// ValidateAt is Validate with an explicit "now" for the UNTIL check.
func ValidateAt(r Rule, now time.Time) Result {
	var errs []string

	if r.Freq == "" {
		errs = append(errs, "frequency is required")
	} else if !r.Freq.Valid() {
		errs = append(errs, fmt.Sprintf("unknown frequency %q", r.Freq))
	}

	if r.Interval < 1 {
		errs = append(errs, "interval must be at least 1")
	}

	if count, ok := r.Count.Get(); ok && count < 1 {
		errs = append(errs, "count must be at least 1")
	}

	if until, ok := r.Until.Get(); ok {
		if until.Before(caldate.FromTime(now)) {
			errs = append(errs, fmt.Sprintf("until date %s is in the past", until))
		}
	}

	for _, d := range r.ByMonthDay {
		if d < 1 || d > 31 {
			errs = append(errs, fmt.Sprintf("month day %d out of range 1-31", d))
		}
	}

	for _, m := range r.ByMonth {
		if m < time.January || m > time.December {
			errs = append(errs, fmt.Sprintf("month %d out of range 1-12", m))
		}
	}

	for _, w := range r.ByDay {
		if !w.Valid() {
			errs = append(errs, fmt.Sprintf("unknown weekday code %q", w))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

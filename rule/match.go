package rule

import (
	"slices"

	"github.com/kalenda/recur/caldate"
)

// Matches reports whether candidate is an occurrence of r for a series
// anchored at anchor. Matching is day-granular; time-of-day never matters.
//
// The frequency gates are anchored to the series start, not to the
// calendar: a WEEKLY;INTERVAL=2 rule anchored on a Wednesday matches 14,
// 28, 42... days after that Wednesday regardless of where calendar weeks
// begin. MONTHLY without BYMONTHDAY matches only the anchor's day-of-month
// and therefore skips months that lack it (no rolling Jan 31 to Feb 28/29).
func (r Rule) Matches(candidate, anchor caldate.Date) bool {
	if candidate.Before(anchor) {
		return false
	}

	iv := r.interval()
	switch r.Freq {
	case FreqDaily:
		if candidate.DaysSince(anchor)%iv != 0 {
			return false
		}

	case FreqWeekly:
		days := candidate.DaysSince(anchor)
		if (days/7)%iv != 0 {
			return false
		}
		// Without a BYDAY filter a weekly rule repeats on the anchor's
		// weekday only.
		if len(r.ByDay) == 0 && candidate.Weekday() != anchor.Weekday() {
			return false
		}

	case FreqMonthly:
		if candidate.MonthsSince(anchor)%iv != 0 {
			return false
		}
		if len(r.ByMonthDay) > 0 {
			if !slices.Contains(r.ByMonthDay, candidate.Day) {
				return false
			}
		} else if candidate.Day != anchor.Day {
			return false
		}

	case FreqYearly:
		if (candidate.Year-anchor.Year)%iv != 0 {
			return false
		}
		if len(r.ByMonth) > 0 {
			// BYMONTH relaxes the exact month+day equality to "any day
			// in these months"; BYDAY below can narrow it again.
			if !slices.Contains(r.ByMonth, candidate.Month) {
				return false
			}
		} else if candidate.Month != anchor.Month || candidate.Day != anchor.Day {
			return false
		}

	default:
		return false
	}

	if len(r.ByDay) > 0 && !slices.Contains(r.ByDay, WeekdayOf(candidate.Weekday())) {
		return false
	}
	return true
}

package rule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleFreqs = map[Frequency]rrule.Frequency{
	FreqDaily:   rrule.DAILY,
	FreqWeekly:  rrule.WEEKLY,
	FreqMonthly: rrule.MONTHLY,
	FreqYearly:  rrule.YEARLY,
}

var rruleWeekdays = map[Weekday]rrule.Weekday{
	Monday:    rrule.MO,
	Tuesday:   rrule.TU,
	Wednesday: rrule.WE,
	Thursday:  rrule.TH,
	Friday:    rrule.FR,
	Saturday:  rrule.SA,
	Sunday:    rrule.SU,
}

// RRule converts r into a teambition/rrule-go rule anchored at dtstart, for
// interop with standard iCalendar tooling.
//
// Note that RFC 5545 expansion is not identical to Matches: this package
// anchors weekly intervals to the series start rather than to a week-start
// day, and never rolls a missing day-of-month to month end. Use the
// conversion for export and interchange, not as an alternative generator.
func (r Rule) RRule(dtstart time.Time) (*rrule.RRule, error) {
	freq, ok := rruleFreqs[r.Freq]
	if !ok {
		return nil, fmt.Errorf("rule: frequency %q has no RFC 5545 equivalent", r.Freq)
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: r.interval(),
		Dtstart:  dtstart,
	}
	for _, w := range r.ByDay {
		wd, ok := rruleWeekdays[w]
		if !ok {
			return nil, fmt.Errorf("rule: unknown weekday code %q", w)
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}
	for _, d := range r.ByMonthDay {
		opt.Bymonthday = append(opt.Bymonthday, d)
	}
	for _, m := range r.ByMonth {
		opt.Bymonth = append(opt.Bymonth, int(m))
	}
	if count, ok := r.Count.Get(); ok {
		opt.Count = count
	} else if until, ok := r.Until.Get(); ok {
		opt.Until = until.Time(dtstart.Location())
	}

	rr, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("rule: cannot build RFC 5545 rule: %w", err)
	}
	return rr, nil
}

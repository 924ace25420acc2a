package rule

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"

	"github.com/kalenda/recur/caldate"
)

// Parse decodes the KEY=VALUE;... rule grammar. Parsing is tolerant:
// unknown keys are ignored, malformed values are skipped. It returns None
// when the text is empty or carries no usable frequency, which callers
// must treat as "no recurrence", not as an error.
func Parse(text string) mo.Option[Rule] {
	text = strings.TrimSpace(text)
	if text == "" {
		return mo.None[Rule]()
	}

	r := Rule{Interval: 1}
	for _, part := range strings.Split(text, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch key {
		case "FREQ":
			if f := Frequency(strings.ToUpper(value)); f.Valid() {
				r.Freq = f
			}
		case "INTERVAL":
			if n, err := strconv.Atoi(value); err == nil && n >= 1 {
				r.Interval = n
			}
		case "BYDAY":
			for _, code := range splitList(value) {
				if w := Weekday(strings.ToUpper(code)); w.Valid() {
					r.ByDay = append(r.ByDay, w)
				}
			}
		case "BYMONTHDAY":
			for _, s := range splitList(value) {
				if n, err := strconv.Atoi(s); err == nil {
					r.ByMonthDay = append(r.ByMonthDay, n)
				}
			}
		case "BYMONTH":
			for _, s := range splitList(value) {
				if n, err := strconv.Atoi(s); err == nil {
					r.ByMonth = append(r.ByMonth, time.Month(n))
				}
			}
		case "COUNT":
			if n, err := strconv.Atoi(value); err == nil {
				r.Count = mo.Some(n)
			}
		case "UNTIL":
			if d, err := caldate.Parse(value); err == nil {
				r.Until = mo.Some(d)
			}
		}
	}

	if !r.Freq.Valid() {
		return mo.None[Rule]()
	}
	return mo.Some(r)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Serialize encodes r in the rule grammar. The field order is fixed (FREQ,
// INTERVAL when > 1, BYDAY, BYMONTHDAY, BYMONTH, then COUNT or UNTIL) so
// the output is deterministic and Parse(r.Serialize()) reproduces r.
func (r Rule) Serialize() string {
	var b strings.Builder
	b.WriteString("FREQ=")
	b.WriteString(string(r.Freq))

	if r.Interval > 1 {
		b.WriteString(";INTERVAL=")
		b.WriteString(strconv.Itoa(r.Interval))
	}
	if len(r.ByDay) > 0 {
		b.WriteString(";BYDAY=")
		for i, w := range r.ByDay {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(string(w))
		}
	}
	if len(r.ByMonthDay) > 0 {
		b.WriteString(";BYMONTHDAY=")
		for i, d := range r.ByMonthDay {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(d))
		}
	}
	if len(r.ByMonth) > 0 {
		b.WriteString(";BYMONTH=")
		for i, m := range r.ByMonth {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(m)))
		}
	}

	if count, ok := r.Count.Get(); ok {
		b.WriteString(";COUNT=")
		b.WriteString(strconv.Itoa(count))
	} else if until, ok := r.Until.Get(); ok {
		b.WriteString(";UNTIL=")
		b.WriteString(until.String())
	}

	return b.String()
}

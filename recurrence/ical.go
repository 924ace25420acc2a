package recurrence

import (
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/kalenda/recur/rule"
)

// RuleFromComponent reads the component's RRULE property and decodes it
// with the tolerant rule grammar. None means the component has no usable
// rule and represents a one-off event.
func RuleFromComponent(comp *ical.Component) mo.Option[rule.Rule] {
	prop := comp.Props.Get(ical.PropRecurrenceRule)
	if prop == nil {
		return mo.None[rule.Rule]()
	}
	return rule.Parse(prop.Value)
}

// AnchorFromComponent extracts the anchor start and end of an iCal event
// component. End falls back to DTSTART+DURATION, then to a one-day span
// for all-day starts, then to an instantaneous event.
func AnchorFromComponent(comp *ical.Component) (start, end time.Time, ok bool) {
	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return time.Time{}, time.Time{}, false
	}
	start, err := startProp.DateTime(nil)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		if end, err = endProp.DateTime(nil); err == nil {
			return start, end, true
		}
		return time.Time{}, time.Time{}, false
	}
	if durProp := comp.Props.Get(ical.PropDuration); durProp != nil {
		if dur, err := durProp.Duration(); err == nil {
			return start, start.Add(dur), true
		}
		return time.Time{}, time.Time{}, false
	}
	if isAllDay(start) {
		return start, start.AddDate(0, 0, 1), true
	}
	return start, start, true
}

// GenerateFromComponent expands an iCal event component directly. A
// component without a rule yields its single anchor occurrence.
func (e *Engine) GenerateFromComponent(comp *ical.Component, exceptions []Exception, queryEnd time.Time, maxInstances int) []Instance {
	start, end, ok := AnchorFromComponent(comp)
	if !ok {
		return nil
	}
	r, hasRule := RuleFromComponent(comp).Get()
	if !hasRule {
		return []Instance{{Start: start, End: end}}
	}
	return e.Generate(start, end, r, exceptions, queryEnd, maxInstances)
}

// InstancesToCalendar renders generated instances as a VCALENDAR with one
// VEVENT per instance, for handing an expansion to iCalendar consumers.
// Each VEVENT gets a fresh UID; exception instances carry the original
// series slot in RECURRENCE-ID.
func InstancesToCalendar(instances []Instance, summary string) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, "-//kalenda//recur//EN")
	cal.Props.SetText(ical.PropVersion, "2.0")

	for _, inst := range instances {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, uuid.New().String())
		event.Props.SetText(ical.PropSummary, summary)
		event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now())
		event.Props.SetDateTime(ical.PropDateTimeStart, inst.Start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, inst.End)
		if inst.IsException {
			event.Props.SetDateTime("RECURRENCE-ID", inst.Start)
		}
		cal.Children = append(cal.Children, event.Component)
	}
	return cal
}

// isAllDay reports whether t looks like a date-only value (midnight).
func isAllDay(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0
}

/*
Package recurrence turns a recurrence rule plus a single base event into a
bounded, ordered list of concrete occurrence instances.

# Basic Usage

Parse a stored rule, then expand it against the base event's anchor times:

	r, ok := rule.Parse("FREQ=WEEKLY;BYDAY=MO,WE;UNTIL=20240115").Get()
	if !ok {
		// no recurrence; the event is a one-off
	}
	engine := recurrence.NewEngine()
	instances := engine.Generate(event.Start, event.End, r, exceptions, queryEnd, 0)

Every instance keeps the anchor's time-of-day and duration; the matched
calendar day supplies the date. Instances are transient values and are
never persisted by this package.

# Exceptions

Exceptions are per-date overrides fetched by the caller and passed into
Generate as a list:

	exceptions := []recurrence.Exception{
		{Date: caldate.New(2024, time.January, 3), Type: recurrence.ExceptionCancelled},
		{Date: caldate.New(2024, time.January, 8), Type: recurrence.ExceptionMoved, ModifiedEventID: "evt42"},
	}

A cancelled date consumes its slot from the occurrence budget but emits
nothing. Modified and moved dates emit an instance flagged with the
exception type and the replacement event reference; resolving the actual
field overrides is left to the caller.

# Bounds

Generation never runs away: the candidate walk stops at the earliest of
the rule's UNTIL date, the queryEnd argument, and two years past the
anchor, and the number of day matches is capped by min(rule COUNT,
maxInstances). Hitting a cap truncates the result silently; truncation is
expected behavior, not an error.

# Concurrency

A default engine is pure and stateless; calls can run concurrently with no
locking. Enabling the result cache through EngineConfig adds a
mutex-guarded cache shared across calls:

	engine := recurrence.NewEngineWithConfig(recurrence.CachedEngineConfig, logger)
	defer engine.Close()

# iCalendar Interop

The bridge functions translate between this package and emersion/go-ical
components: RuleFromComponent and AnchorFromComponent read a VEVENT,
GenerateFromComponent expands one directly, and InstancesToCalendar renders
an expansion back out as a VCALENDAR. For standard RFC 5545 tooling,
rule.Rule converts to a teambition/rrule-go rule via Rule.RRule; note that
this package's matcher deliberately anchors weekly intervals to the series
start and never rolls a missing day-of-month to month end, so the two
expansions are not interchangeable.
*/
package recurrence

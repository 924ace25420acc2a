package recurrence

import (
	"time"

	"github.com/kalenda/recur/caldate"
)

// ExceptionType classifies a per-date override of a recurring series.
type ExceptionType string

const (
	ExceptionCancelled ExceptionType = "cancelled"
	ExceptionModified  ExceptionType = "modified"
	ExceptionMoved     ExceptionType = "moved"
)

// Exception is a single-date override, fetched by the caller from its
// exception store and handed to Generate. At most one exception is
// meaningful per (series, date); when duplicates are passed in, the last
// one wins.
type Exception struct {
	ParentEventID string
	Date          caldate.Date
	Type          ExceptionType

	// ModifiedEventID references the standalone event carrying the
	// replacement fields; set for modified and moved exceptions.
	ModifiedEventID string
}

// Instance is one concrete occurrence of a recurring series. Instances are
// produced on demand and never persisted; any caching is the caller's job.
type Instance struct {
	Start time.Time
	End   time.Time

	// Exception overlay. When IsException is true the caller resolves the
	// actual field overrides through ModifiedEventID; Start and End here
	// still reflect the matched candidate day.
	IsException     bool
	ExceptionType   ExceptionType
	ModifiedEventID string
}

// Date returns the calendar day of the instance in its own location.
func (i Instance) Date() caldate.Date {
	return caldate.FromTime(i.Start)
}

// Package store defines the persistence boundary the recurrence engine
// sits behind: base events carrying an optional serialized rule, and
// per-date exception records keyed by the parent event. The engine itself
// performs no I/O; callers fetch records here and hand them to
// recurrence.Generate.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kalenda/recur/caldate"
	"github.com/kalenda/recur/recurrence"
)

// Error types
type ErrorType string

const (
	ErrNotFound      ErrorType = "not_found"
	ErrAlreadyExists ErrorType = "already_exists"
	ErrInvalidInput  ErrorType = "invalid_input"
)

// Error represents a store-related error
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Event is a base event record. A recurring series is just a base event
// with a non-empty Rule field; the rule text uses the grammar of the rule
// package. Start and End supply the anchor time-of-day and duration for
// every generated occurrence.
type Event struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
	Rule  string // serialized recurrence rule; empty for a one-off event
}

// Store is the interface a persistence backend implements. Exceptions obey
// the overlay model: at most one record exists per (parent event, date),
// and PutException creates or replaces in one step.
type Store interface {
	// Event operations
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	CreateEvent(ctx context.Context, ev *Event) error
	UpdateEvent(ctx context.Context, ev *Event) error
	DeleteEvent(ctx context.Context, id string) error

	// Exception operations
	ListExceptions(ctx context.Context, parentEventID string) ([]recurrence.Exception, error)
	PutException(ctx context.Context, exc recurrence.Exception) error
	DeleteException(ctx context.Context, parentEventID string, date caldate.Date) error
}

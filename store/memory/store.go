// memory based implementation for testing purposes
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/kalenda/recur/caldate"
	"github.com/kalenda/recur/recurrence"
	"github.com/kalenda/recur/store"
)

// Store implements store.Store using in-memory maps
type Store struct {
	mu         sync.RWMutex
	events     map[string]*store.Event
	exceptions map[string]map[caldate.Date]recurrence.Exception // key: parent event ID
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		events:     make(map[string]*store.Event),
		exceptions: make(map[string]map[caldate.Date]recurrence.Exception),
	}
}

// Event operations

func (s *Store) GetEvent(_ context.Context, id string) (*store.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[id]
	if !ok {
		return nil, &store.Error{Type: store.ErrNotFound, Message: "event not found"}
	}
	clone := *ev
	return &clone, nil
}

func (s *Store) ListEvents(_ context.Context) ([]*store.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*store.Event, 0, len(s.events))
	for _, ev := range s.events {
		clone := *ev
		events = append(events, &clone)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (s *Store) CreateEvent(_ context.Context, ev *store.Event) error {
	if ev == nil {
		return &store.Error{Type: store.ErrInvalidInput, Message: "event is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if _, exists := s.events[ev.ID]; exists {
		return &store.Error{Type: store.ErrAlreadyExists, Message: "event already exists"}
	}

	clone := *ev
	s.events[ev.ID] = &clone
	return nil
}

func (s *Store) UpdateEvent(_ context.Context, ev *store.Event) error {
	if ev == nil || ev.ID == "" {
		return &store.Error{Type: store.ErrInvalidInput, Message: "event with ID is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[ev.ID]; !exists {
		return &store.Error{Type: store.ErrNotFound, Message: "event not found"}
	}

	clone := *ev
	s.events[ev.ID] = &clone
	return nil
}

func (s *Store) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[id]; !exists {
		return &store.Error{Type: store.ErrNotFound, Message: "event not found"}
	}

	delete(s.events, id)
	delete(s.exceptions, id)
	return nil
}

// Exception operations

func (s *Store) ListExceptions(_ context.Context, parentEventID string) ([]recurrence.Exception, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDate := s.exceptions[parentEventID]
	excs := make([]recurrence.Exception, 0, len(byDate))
	for _, exc := range byDate {
		excs = append(excs, exc)
	}
	sort.Slice(excs, func(i, j int) bool { return excs[i].Date.Before(excs[j].Date) })
	return excs, nil
}

// PutException creates or replaces the exception for (parent, date).
func (s *Store) PutException(_ context.Context, exc recurrence.Exception) error {
	if exc.ParentEventID == "" || exc.Date.IsZero() {
		return &store.Error{Type: store.ErrInvalidInput, Message: "parent event ID and date are required"}
	}
	switch exc.Type {
	case recurrence.ExceptionCancelled:
	case recurrence.ExceptionModified, recurrence.ExceptionMoved:
		if exc.ModifiedEventID == "" {
			return &store.Error{Type: store.ErrInvalidInput, Message: "modified event reference is required"}
		}
	default:
		return &store.Error{Type: store.ErrInvalidInput, Message: "unknown exception type"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[exc.ParentEventID]; !exists {
		return &store.Error{Type: store.ErrNotFound, Message: "parent event not found"}
	}

	byDate := s.exceptions[exc.ParentEventID]
	if byDate == nil {
		byDate = make(map[caldate.Date]recurrence.Exception)
		s.exceptions[exc.ParentEventID] = byDate
	}
	byDate[exc.Date] = exc
	return nil
}

func (s *Store) DeleteException(_ context.Context, parentEventID string, date caldate.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate := s.exceptions[parentEventID]
	if _, exists := byDate[date]; !exists {
		return &store.Error{Type: store.ErrNotFound, Message: "exception not found"}
	}

	delete(byDate, date)
	return nil
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalenda/recur/caldate"
	"github.com/kalenda/recur/recurrence"
	"github.com/kalenda/recur/rule"
	"github.com/kalenda/recur/store"
)

func TestEventCRUD(t *testing.T) {
	s := New()
	ctx := context.Background()

	ev := &store.Event{
		Title: "Standup",
		Start: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
		Rule:  "FREQ=DAILY;COUNT=10",
	}
	require.NoError(t, s.CreateEvent(ctx, ev))
	assert.NotEmpty(t, ev.ID, "ID assigned on create")

	got, err := s.GetEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Standup", got.Title)

	got.Title = "Daily standup"
	require.NoError(t, s.UpdateEvent(ctx, got))
	got, err = s.GetEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Daily standup", got.Title)

	all, err := s.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.DeleteEvent(ctx, ev.ID))
	_, err = s.GetEvent(ctx, ev.ID)
	var storeErr *store.Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, store.ErrNotFound, storeErr.Type)
}

func TestCreateEventDuplicate(t *testing.T) {
	s := New()
	ctx := context.Background()

	ev := &store.Event{ID: "fixed"}
	require.NoError(t, s.CreateEvent(ctx, ev))

	err := s.CreateEvent(ctx, &store.Event{ID: "fixed"})
	var storeErr *store.Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, store.ErrAlreadyExists, storeErr.Type)
}

func TestExceptionOverlay(t *testing.T) {
	s := New()
	ctx := context.Background()

	ev := &store.Event{ID: "series"}
	require.NoError(t, s.CreateEvent(ctx, ev))

	day := caldate.New(2024, time.January, 2)

	// create
	require.NoError(t, s.PutException(ctx, recurrence.Exception{
		ParentEventID: "series",
		Date:          day,
		Type:          recurrence.ExceptionCancelled,
	}))

	// replace: one record per (series, date)
	require.NoError(t, s.PutException(ctx, recurrence.Exception{
		ParentEventID:   "series",
		Date:            day,
		Type:            recurrence.ExceptionMoved,
		ModifiedEventID: "replacement",
	}))

	excs, err := s.ListExceptions(ctx, "series")
	require.NoError(t, err)
	require.Len(t, excs, 1)
	assert.Equal(t, recurrence.ExceptionMoved, excs[0].Type)

	// delete returns the date to the "none" state
	require.NoError(t, s.DeleteException(ctx, "series", day))
	excs, err = s.ListExceptions(ctx, "series")
	require.NoError(t, err)
	assert.Empty(t, excs)

	err = s.DeleteException(ctx, "series", day)
	var storeErr *store.Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, store.ErrNotFound, storeErr.Type)
}

func TestPutExceptionValidation(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.CreateEvent(ctx, &store.Event{ID: "series"}))

	day := caldate.New(2024, time.January, 2)

	tests := []struct {
		name string
		exc  recurrence.Exception
		want store.ErrorType
	}{
		{
			name: "missing parent reference",
			exc:  recurrence.Exception{Date: day, Type: recurrence.ExceptionCancelled},
			want: store.ErrInvalidInput,
		},
		{
			name: "modified without replacement reference",
			exc:  recurrence.Exception{ParentEventID: "series", Date: day, Type: recurrence.ExceptionModified},
			want: store.ErrInvalidInput,
		},
		{
			name: "unknown type",
			exc:  recurrence.Exception{ParentEventID: "series", Date: day, Type: "paused"},
			want: store.ErrInvalidInput,
		},
		{
			name: "unknown parent",
			exc:  recurrence.Exception{ParentEventID: "ghost", Date: day, Type: recurrence.ExceptionCancelled},
			want: store.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.PutException(ctx, tt.exc)
			var storeErr *store.Error
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, tt.want, storeErr.Type)
		})
	}
}

// End to end: records come out of the store and feed the engine.
func TestStoreFeedsEngine(t *testing.T) {
	s := New()
	ctx := context.Background()
	engine := recurrence.NewEngine()

	ev := &store.Event{
		Title: "Standup",
		Start: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
		Rule:  "FREQ=DAILY;COUNT=5",
	}
	require.NoError(t, s.CreateEvent(ctx, ev))
	require.NoError(t, s.PutException(ctx, recurrence.Exception{
		ParentEventID: ev.ID,
		Date:          caldate.New(2024, time.January, 3),
		Type:          recurrence.ExceptionCancelled,
	}))

	stored, err := s.GetEvent(ctx, ev.ID)
	require.NoError(t, err)
	r, ok := rule.Parse(stored.Rule).Get()
	require.True(t, ok)
	excs, err := s.ListExceptions(ctx, ev.ID)
	require.NoError(t, err)

	instances := engine.Generate(stored.Start, stored.End, r, excs, time.Time{}, 0)
	assert.Len(t, instances, 4, "five budget slots, one cancelled")
}

// Command example seeds an in-memory store with a recurring event, layers
// a few exceptions on it and prints the expanded occurrences.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kalenda/recur/caldate"
	"github.com/kalenda/recur/recurrence"
	"github.com/kalenda/recur/rule"
	"github.com/kalenda/recur/store"
	"github.com/kalenda/recur/store/memory"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	// A phrase from the event form becomes a structured rule.
	r, ok := rule.Recognize("every two weeks").Get()
	if !ok {
		logger.Error("could not infer a rule from phrase")
		os.Exit(1)
	}

	if res := rule.Validate(r); !res.Valid {
		logger.Error("rule failed validation", "errors", res.Errors)
		os.Exit(1)
	}

	s := memory.New()
	ev := &store.Event{
		Title: "Team sync",
		Start: time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local),
		End:   time.Date(2026, 9, 2, 10, 0, 0, 0, time.Local),
		Rule:  r.Serialize(),
	}
	if err := s.CreateEvent(ctx, ev); err != nil {
		logger.Error("create event", "err", err)
		os.Exit(1)
	}
	logger.Info("stored recurring event", "id", ev.ID, "rule", ev.Rule)

	// Cancel the second occurrence and move the third.
	replacement := &store.Event{
		Title: "Team sync (moved)",
		Start: ev.Start.AddDate(0, 0, 29),
		End:   ev.End.AddDate(0, 0, 29),
	}
	if err := s.CreateEvent(ctx, replacement); err != nil {
		logger.Error("create replacement event", "err", err)
		os.Exit(1)
	}
	for _, exc := range []recurrence.Exception{
		{
			ParentEventID: ev.ID,
			Date:          caldate.FromTime(ev.Start.AddDate(0, 0, 14)),
			Type:          recurrence.ExceptionCancelled,
		},
		{
			ParentEventID:   ev.ID,
			Date:            caldate.FromTime(ev.Start.AddDate(0, 0, 28)),
			Type:            recurrence.ExceptionMoved,
			ModifiedEventID: replacement.ID,
		},
	} {
		if err := s.PutException(ctx, exc); err != nil {
			logger.Error("put exception", "err", err)
			os.Exit(1)
		}
	}

	// Expand three months ahead, the way a calendar view would.
	stored, err := s.GetEvent(ctx, ev.ID)
	if err != nil {
		logger.Error("get event", "err", err)
		os.Exit(1)
	}
	parsed, ok := rule.Parse(stored.Rule).Get()
	if !ok {
		logger.Error("stored rule did not parse", "rule", stored.Rule)
		os.Exit(1)
	}
	exceptions, err := s.ListExceptions(ctx, stored.ID)
	if err != nil {
		logger.Error("list exceptions", "err", err)
		os.Exit(1)
	}

	engine := recurrence.NewEngineWithConfig(recurrence.CachedEngineConfig, logger)
	defer engine.Close()

	instances := engine.Generate(stored.Start, stored.End,
		parsed, exceptions, stored.Start.AddDate(0, 3, 0), 0)

	for _, inst := range instances {
		suffix := ""
		if inst.IsException {
			suffix = fmt.Sprintf("  [%s -> %s]", inst.ExceptionType, inst.ModifiedEventID)
		}
		fmt.Printf("%s  %s - %s%s\n",
			stored.Title,
			inst.Start.Format("2006-01-02 15:04"),
			inst.End.Format("15:04"),
			suffix)
	}
}

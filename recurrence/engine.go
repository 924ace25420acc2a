package recurrence

import (
	"log/slog"
	"time"

	"github.com/kalenda/recur/caldate"
	"github.com/kalenda/recur/rule"
)

// Engine generates occurrence instances. A zero-configured Engine is pure
// and stateless and is safe for concurrent use; enabling the cache adds a
// mutex-guarded result cache shared across calls.
type Engine struct {
	cache  *Cache
	config EngineConfig
	logger *slog.Logger
}

// NewEngine returns an engine with DefaultEngineConfig.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig, nil)
}

// NewEngineWithConfig returns an engine with the given configuration.
// A nil logger falls back to slog.Default.
func NewEngineWithConfig(config EngineConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{config: config, logger: logger}
	if config.CacheEnabled {
		e.cache = NewCache(config.CacheConfig)
	}
	return e
}

// Close releases the engine's cache, if any.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

var defaultEngine = NewEngine()

// Generate expands r against the anchor event using a shared default
// engine. See Engine.Generate.
func Generate(anchorStart, anchorEnd time.Time, r rule.Rule, exceptions []Exception, queryEnd time.Time, maxInstances int) []Instance {
	return defaultEngine.Generate(anchorStart, anchorEnd, r, exceptions, queryEnd, maxInstances)
}

// Generate walks candidate days from the anchor's calendar date and
// materializes an instance for every day the rule matches, preserving the
// anchor's time-of-day and duration.
//
// The walk stops at the earliest of the rule's UNTIL date, queryEnd's
// calendar day (when queryEnd is non-zero) and two years past the anchor.
// Day matches are counted against min(rule.Count, maxInstances); a
// cancelled exception consumes its slot from that budget without emitting
// an instance. maxInstances values < 1 fall back to the configured default.
//
// queryEnd is a safety bound, not a precise window: callers wanting a
// tight display window filter the result themselves. The returned
// instances are strictly increasing by start time.
func (e *Engine) Generate(anchorStart, anchorEnd time.Time, r rule.Rule, exceptions []Exception, queryEnd time.Time, maxInstances int) []Instance {
	if maxInstances < 1 {
		maxInstances = e.config.DefaultMaxInstances
		if maxInstances < 1 {
			maxInstances = DefaultEngineConfig.DefaultMaxInstances
		}
	}

	if e.cache != nil {
		if cached, ok := e.cache.Get(anchorStart, anchorEnd, r, exceptions, queryEnd, maxInstances); ok {
			return cached
		}
	}

	anchorDate := caldate.FromTime(anchorStart)
	walkEnd := anchorDate.AddDays(int(maxWalkSpan / (24 * time.Hour)))
	if until, ok := r.Until.Get(); ok {
		walkEnd = caldate.Min(walkEnd, until)
	}
	if !queryEnd.IsZero() {
		walkEnd = caldate.Min(walkEnd, caldate.FromTime(queryEnd))
	}

	budget := maxInstances
	if count, ok := r.Count.Get(); ok && count < budget {
		budget = count
	}

	overrides := make(map[caldate.Date]Exception, len(exceptions))
	for _, exc := range exceptions {
		overrides[exc.Date] = exc
	}

	duration := anchorEnd.Sub(anchorStart)
	var instances []Instance
	matched := 0

	for day := anchorDate; !day.After(walkEnd) && matched < budget; day = day.AddDays(1) {
		if !r.Matches(day, anchorDate) {
			continue
		}
		matched++

		exc, overridden := overrides[day]
		if overridden && exc.Type == ExceptionCancelled {
			continue
		}

		start := day.WithClock(anchorStart)
		inst := Instance{Start: start, End: start.Add(duration)}
		if overridden {
			inst.IsException = true
			inst.ExceptionType = exc.Type
			inst.ModifiedEventID = exc.ModifiedEventID
		}
		instances = append(instances, inst)
	}

	if matched >= budget && budget == maxInstances && r.Count.IsAbsent() {
		e.logger.Debug("recurrence expansion hit instance ceiling",
			"rule", r.Serialize(),
			"anchor", anchorDate.String(),
			"ceiling", maxInstances)
	}

	if e.cache != nil {
		e.cache.Set(anchorStart, anchorEnd, r, exceptions, queryEnd, maxInstances, instances)
	}

	return instances
}

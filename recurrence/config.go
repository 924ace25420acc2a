package recurrence

import "time"

// EngineConfig holds tuning options for the occurrence generator.
type EngineConfig struct {
	// Cache configuration. Caching is off by default: the engine is a pure
	// function of its inputs and result caching is a caller-side concern.
	CacheEnabled bool
	CacheConfig  CacheConfig

	// DefaultMaxInstances is used when Generate is called with a
	// non-positive maxInstances ceiling.
	DefaultMaxInstances int
}

// maxWalkSpan is the hard safety bound on the candidate-day walk. Rules
// with a missing or far-away UNTIL stop two years after the anchor no
// matter what the caller asks for.
const maxWalkSpan = 2 * 365 * 24 * time.Hour

// DefaultEngineConfig is the stock configuration: no cache, 365-instance
// default ceiling.
var DefaultEngineConfig = EngineConfig{
	CacheEnabled:        false,
	DefaultMaxInstances: 365,
}

// CachedEngineConfig enables result caching with the default cache
// settings, for callers that expand the same series repeatedly.
var CachedEngineConfig = EngineConfig{
	CacheEnabled:        true,
	CacheConfig:         DefaultCacheConfig,
	DefaultMaxInstances: 365,
}

// HighThroughputConfig trades cache freshness for hit rate.
var HighThroughputConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             30 * time.Minute,
		MaxEntries:      5000,
		CleanupInterval: 10 * time.Minute,
	},
	DefaultMaxInstances: 365,
}

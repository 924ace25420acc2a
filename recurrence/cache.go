package recurrence

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/kalenda/recur/rule"
)

// cacheEntry is one cached expansion result.
type cacheEntry struct {
	instances  []Instance
	expiresAt  time.Time
	accessedAt time.Time
}

// Cache memoizes Generate results. Entries expire after a TTL and the
// least recently accessed entries are evicted when the cache grows past
// MaxEntries. All methods are safe for concurrent use.
type Cache struct {
	mu          sync.RWMutex
	entries     map[string]*cacheEntry
	ttl         time.Duration
	maxEntries  int
	stopCleanup chan struct{}
}

// CacheConfig holds configuration for the expansion cache.
type CacheConfig struct {
	TTL             time.Duration // how long entries stay valid
	MaxEntries      int           // maximum entries before eviction
	CleanupInterval time.Duration // how often expired entries are swept
}

// DefaultCacheConfig provides sensible defaults for expansion caching.
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      1000,
	CleanupInterval: 5 * time.Minute,
}

// NewCache creates a cache and starts its background sweep goroutine.
// Call Close to stop it.
func NewCache(config CacheConfig) *Cache {
	if config.TTL <= 0 {
		config.TTL = DefaultCacheConfig.TTL
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultCacheConfig.MaxEntries
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = DefaultCacheConfig.CleanupInterval
	}

	c := &Cache{
		entries:     make(map[string]*cacheEntry),
		ttl:         config.TTL,
		maxEntries:  config.MaxEntries,
		stopCleanup: make(chan struct{}),
	}
	go c.cleanupLoop(config.CleanupInterval)
	return c
}

// cacheKey hashes every input that influences a Generate result.
func cacheKey(anchorStart, anchorEnd time.Time, r rule.Rule, exceptions []Exception, queryEnd time.Time, maxInstances int) string {
	h := sha256.New()
	h.Write([]byte(anchorStart.Format(time.RFC3339Nano)))
	h.Write([]byte(anchorEnd.Format(time.RFC3339Nano)))
	h.Write([]byte(r.Serialize()))
	h.Write([]byte(queryEnd.Format(time.RFC3339Nano)))
	h.Write([]byte(strconv.Itoa(maxInstances)))
	for _, exc := range exceptions {
		h.Write([]byte(exc.Date.String()))
		h.Write([]byte(exc.Type))
		h.Write([]byte(exc.ModifiedEventID))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached instances for the given inputs, if present and
// not expired.
func (c *Cache) Get(anchorStart, anchorEnd time.Time, r rule.Rule, exceptions []Exception, queryEnd time.Time, maxInstances int) ([]Instance, bool) {
	key := cacheKey(anchorStart, anchorEnd, r, exceptions, queryEnd, maxInstances)

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	now := time.Now()
	if now.After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	entry.accessedAt = now
	c.mu.Unlock()

	return entry.instances, true
}

// Set stores a Generate result.
func (c *Cache) Set(anchorStart, anchorEnd time.Time, r rule.Rule, exceptions []Exception, queryEnd time.Time, maxInstances int, instances []Instance) {
	key := cacheKey(anchorStart, anchorEnd, r, exceptions, queryEnd, maxInstances)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		instances:  instances,
		expiresAt:  now.Add(c.ttl),
		accessedAt: now,
	}
	if len(c.entries) > c.maxEntries {
		c.evict()
	}
}

// evict removes expired entries, then the least recently accessed entries
// until the cache fits. Caller must hold the write lock.
func (c *Cache) evict() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	if len(c.entries) <= c.maxEntries {
		return
	}

	type keyAccess struct {
		key        string
		accessedAt time.Time
	}
	byAge := make([]keyAccess, 0, len(c.entries))
	for key, entry := range c.entries {
		byAge = append(byAge, keyAccess{key, entry.accessedAt})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].accessedAt.Before(byAge[j].accessedAt)
	})

	excess := len(c.entries) - c.maxEntries
	for i := 0; i < excess && i < len(byAge); i++ {
		delete(c.entries, byAge[i].key)
	}
}

func (c *Cache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.evict()
			c.mu.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the sweep goroutine and drops all entries.
func (c *Cache) Close() {
	close(c.stopCleanup)
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// Stats reports the current entry counts.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	expired := 0
	for _, entry := range c.entries {
		if now.After(entry.expiresAt) {
			expired++
		}
	}
	return CacheStats{
		TotalEntries:   len(c.entries),
		ExpiredEntries: expired,
		ActiveEntries:  len(c.entries) - expired,
	}
}

// CacheStats describes cache occupancy.
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
}

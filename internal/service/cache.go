package service

import (
	"sync"
	"time"

	"github.com/guttosm/chartpulse/internal/domain/models"
)

// figureCache memoizes built figures keyed by a digest of the input
// table and request. Entries expire after a TTL and the store is capped;
// when full, expired entries are dropped first, then the oldest one.
//
// Figures handed out of the cache are shared and must be treated as
// read-only, which matches the engine's contract (figures are never
// mutated after construction).
type figureCache struct {
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	ttl        time.Duration
	maxEntries int
}

type cacheEntry struct {
	fig      *models.Figure
	storedAt time.Time
}

func newFigureCache(ttl time.Duration, maxEntries int) *figureCache {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	return &figureCache{
		entries:    make(map[string]*cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (c *figureCache) get(key string) (*models.Figure, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Since(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.fig, true
}

func (c *figureCache) put(key string, fig *models.Figure) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = &cacheEntry{fig: fig, storedAt: time.Now()}
}

// evictLocked drops expired entries; if none expired, the oldest entry
// goes. Caller holds the lock.
func (c *figureCache) evictLocked() {
	now := time.Now()
	dropped := false
	if c.ttl > 0 {
		for k, e := range c.entries {
			if now.Sub(e.storedAt) > c.ttl {
				delete(c.entries, k)
				dropped = true
			}
		}
	}
	if dropped {
		return
	}
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.storedAt.Before(oldest) {
			oldestKey, oldest = k, e.storedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

func (c *figureCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

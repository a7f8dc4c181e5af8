package geocode

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"weatherwear/pkg/metrics"
	"weatherwear/pkg/models"
)

type cacheEntry struct {
	point models.GeoPoint
	timer *time.Timer
}

// MemoryCache is an in-memory Cache implementation with TTL-based
// auto-eviction. Safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*cacheEntry
	reg     *metrics.Registry
}

// NewMemoryCache creates an empty cache. Entries live for ttl; a
// non-positive ttl disables eviction (useful in tests).
func NewMemoryCache(ttl time.Duration, reg *metrics.Registry) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		reg:     reg,
	}
}

func (c *MemoryCache) Get(ctx context.Context, place string) (models.GeoPoint, bool) {
	key := normalizeKey(place)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		if c.reg != nil {
			c.reg.Inc(ctx, "geocode_cache_misses_total", map[string]string{}, 1)
		}
		return models.GeoPoint{}, false
	}
	if c.reg != nil {
		c.reg.Inc(ctx, "geocode_cache_hits_total", map[string]string{}, 1)
	}
	return e.point, true
}

func (c *MemoryCache) Put(ctx context.Context, place string, pt models.GeoPoint) {
	key := normalizeKey(place)
	if key == "" {
		return
	}

	entry := &cacheEntry{point: pt}
	if c.ttl > 0 {
		entry.timer = time.AfterFunc(c.ttl, func() {
			// Background eviction; context not required.
			c.Forget(context.Background(), key)
		})
	}

	c.mu.Lock()
	if old, ok := c.entries[key]; ok && old.timer != nil {
		old.timer.Stop()
	}
	c.entries[key] = entry
	c.mu.Unlock()

	log.Ctx(ctx).Debug().Str("place", key).Str("resolved", pt.Name).Msg("geocode result cached")
}

func (c *MemoryCache) Forget(ctx context.Context, place string) {
	key := normalizeKey(place)

	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	if ok && e.timer != nil {
		e.timer.Stop()
	}
	if ok && c.reg != nil {
		c.reg.Inc(ctx, "geocode_cache_evictions_total", map[string]string{}, 1)
	}
}

// normalizeKey lowercases and collapses whitespace so "New  York" and
// "new york" share an entry.
func normalizeKey(place string) string {
	return strings.Join(strings.Fields(strings.ToLower(place)), " ")
}

package memcache

import (
	"sync"
	"time"
)

// RouteSummary is the cached result of one routing-collaborator call.
type RouteSummary struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// RouteCache memoizes routing responses by a caller-built pair key so detour
// estimation does not pay twice for the same leg.
type RouteCache interface {
	Get(key string) (RouteSummary, bool)
	Set(key string, v RouteSummary, ttl time.Duration)
}

type entry struct {
	summary   RouteSummary
	expiresAt time.Time
}

type inMemoryRouteCache struct {
	mu    sync.RWMutex
	store map[string]entry
}

func NewInMemoryRouteCache() RouteCache {
	return &inMemoryRouteCache{store: make(map[string]entry)}
}

func (c *inMemoryRouteCache) Get(key string) (RouteSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[key]
	if !ok || time.Now().After(it.expiresAt) {
		return RouteSummary{}, false
	}
	return it.summary, true
}

func (c *inMemoryRouteCache) Set(key string, v RouteSummary, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = entry{summary: v, expiresAt: time.Now().Add(ttl)}

	// Opportunistic cleanup once the map grows large.
	if len(c.store) > 10000 {
		now := time.Now()
		for k, e := range c.store {
			if now.After(e.expiresAt) {
				delete(c.store, k)
			}
		}
	}
}

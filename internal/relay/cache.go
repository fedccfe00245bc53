package relay

import (
	"context"
	"sync"
	"time"
)

// catalogCache holds the server's help document for a TTL so repeated help
// calls from an agent do not each cost a round trip.
type catalogCache struct {
	mu      sync.Mutex
	entry   map[string]any
	fetched time.Time
	ttl     time.Duration
	now     func() time.Time
}

// newCatalogCache creates a new cache. A ttl of 0 disables caching.
func newCatalogCache(ttl time.Duration) *catalogCache {
	return &catalogCache{ttl: ttl, now: time.Now}
}

// get returns the cached catalog if within TTL, otherwise fetches it fresh.
func (c *catalogCache) get(ctx context.Context, fetch func(context.Context) (map[string]any, error)) (map[string]any, error) {
	if c.ttl == 0 {
		return fetch(ctx)
	}

	c.mu.Lock()
	if c.entry != nil && c.now().Sub(c.fetched) < c.ttl {
		entry := c.entry
		c.mu.Unlock()
		return entry, nil
	}
	c.mu.Unlock()

	entry, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entry, c.fetched = entry, c.now()
	c.mu.Unlock()
	return entry, nil
}

// invalidate drops the cached catalog.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
}

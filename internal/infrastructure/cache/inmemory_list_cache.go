package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryListCache records invalidations in process memory. It stands in
// for Redis in single-instance and test runs, where there is no read tier
// to notify.
type InMemoryListCache struct {
	mu          sync.Mutex
	invalidated map[string]time.Time
}

// NewInMemoryListCache creates a new in-memory list cache
func NewInMemoryListCache() *InMemoryListCache {
	return &InMemoryListCache{
		invalidated: make(map[string]time.Time),
	}
}

// NotifyListChanged records the invalidation for the given path
func (c *InMemoryListCache) NotifyListChanged(_ context.Context, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated[path] = time.Now()
}

// LastInvalidated returns when the given path was last invalidated
func (c *InMemoryListCache) LastInvalidated(path string) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	at, ok := c.invalidated[path]
	return at, ok
}

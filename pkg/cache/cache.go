// Package cache provides TTL-keyed caching of loaded prefix registries so
// repeated settings reads do not re-parse large .reg files. Entries reflect
// only writes made through the editor/store pair; external writers (the
// emulation runtime itself) are invisible until the entry expires or is
// invalidated.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/winetools/regkit/pkg/registry"
)

// DefaultTTL is how long a cached registry stays fresh unless the cache was
// constructed with a different value.
const DefaultTTL = 300 * time.Second

// RegistryCache is the polymorphic cache contract. Implementations must be
// safe for concurrent use.
type RegistryCache interface {
	// GetCachedRegistry returns a live handle for prefixPath, or ok=false
	// on miss. An expired entry is a miss but is not evicted by this call
	// (lazy expiry).
	GetCachedRegistry(ctx context.Context, prefixPath string) (*registry.WineRegistry, bool, error)
	// CacheRegistry inserts or overwrites the entry for prefixPath,
	// resetting its creation time and applying the configured TTL.
	CacheRegistry(ctx context.Context, prefixPath string, reg *registry.WineRegistry) error
	// InvalidateCache removes the entry for prefixPath.
	InvalidateCache(ctx context.Context, prefixPath string) error
	// ClearAllCache removes every entry.
	ClearAllCache(ctx context.Context) error
	// CleanupExpired removes all entries whose age exceeds their TTL.
	CleanupExpired(ctx context.Context) error
}

type entry struct {
	registry  *registry.WineRegistry
	createdAt time.Time
	ttl       time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

// InMemoryCache is the standard RegistryCache backed by a map.
type InMemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
}

// Option configures an InMemoryCache.
type Option func(*InMemoryCache)

// WithClock injects the time source; tests use it to age entries without
// sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *InMemoryCache) { c.now = now }
}

// NewInMemoryCache returns a cache using the given TTL for new entries;
// ttl <= 0 selects DefaultTTL.
func NewInMemoryCache(ttl time.Duration, opts ...Option) *InMemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &InMemoryCache{
		entries:    make(map[string]entry),
		defaultTTL: ttl,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *InMemoryCache) GetCachedRegistry(ctx context.Context, prefixPath string) (*registry.WineRegistry, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[prefixPath]
	if !ok || e.expired(c.now()) {
		return nil, false, nil
	}
	return e.registry.Clone(), true, nil
}

func (c *InMemoryCache) CacheRegistry(ctx context.Context, prefixPath string, reg *registry.WineRegistry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[prefixPath] = entry{registry: reg, createdAt: c.now(), ttl: c.defaultTTL}
	return nil
}

func (c *InMemoryCache) InvalidateCache(ctx context.Context, prefixPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, prefixPath)
	return nil
}

func (c *InMemoryCache) ClearAllCache(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	return nil
}

func (c *InMemoryCache) CleanupExpired(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for path, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, path)
		}
	}
	return nil
}

// StartSweeper runs CleanupExpired every interval until ctx ends. It returns
// immediately; the sweep runs on its own goroutine.
func (c *InMemoryCache) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = c.defaultTTL
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = c.CleanupExpired(ctx)
			}
		}
	}()
}

// Stats describes cache occupancy at a point in time.
type Stats struct {
	TotalEntries   int
	ExpiredEntries int
	ValidEntries   int
}

// Stats reports current occupancy, counting expired-but-unswept entries.
func (c *InMemoryCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	s := Stats{TotalEntries: len(c.entries)}
	for _, e := range c.entries {
		if e.expired(now) {
			s.ExpiredEntries++
		}
	}
	s.ValidEntries = s.TotalEntries - s.ExpiredEntries
	return s
}

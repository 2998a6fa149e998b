package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winetools/regkit/pkg/registry"
	"github.com/winetools/regkit/pkg/types"
)

// fakeClock is an adjustable time source for TTL tests.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration) (*InMemoryCache, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	return NewInMemoryCache(ttl, WithClock(clock.now)), clock
}

func markedRegistry(t *testing.T, marker string) *registry.WineRegistry {
	t.Helper()
	w := registry.New()
	require.NoError(t, w.SetValue(context.Background(), `Software\Wine`, types.NamedValue("Source"), types.Sz(marker)))
	return w
}

func TestCacheHitAndMiss(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Minute)

	if _, ok, err := c.GetCachedRegistry(ctx, "/prefix/a"); ok || err != nil {
		t.Fatalf("empty cache: got ok=%v err=%v", ok, err)
	}

	require.NoError(t, c.CacheRegistry(ctx, "/prefix/a", markedRegistry(t, "a")))

	got, ok, err := c.GetCachedRegistry(ctx, "/prefix/a")
	require.NoError(t, err)
	require.True(t, ok)
	v, _, _ := got.GetValue(ctx, `Software\Wine`, types.NamedValue("Source"))
	assert.Equal(t, types.Sz("a"), v)

	// Distinct prefixes are distinct entries.
	if _, ok, _ := c.GetCachedRegistry(ctx, "/prefix/b"); ok {
		t.Error("unexpected hit for uncached prefix")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(time.Minute)
	require.NoError(t, c.CacheRegistry(ctx, "/prefix/a", markedRegistry(t, "a")))

	clock.advance(59 * time.Second)
	if _, ok, _ := c.GetCachedRegistry(ctx, "/prefix/a"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	clock.advance(2 * time.Second)
	if _, ok, _ := c.GetCachedRegistry(ctx, "/prefix/a"); ok {
		t.Fatal("entry survived past its TTL")
	}

	// Expiry on read is lazy: the entry still counts until swept.
	stats := c.Stats()
	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, 1, stats.ExpiredEntries)

	require.NoError(t, c.CleanupExpired(ctx))
	assert.Equal(t, 0, c.Stats().TotalEntries)
}

func TestCacheReplaceResetsTTL(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(time.Minute)
	require.NoError(t, c.CacheRegistry(ctx, "/prefix/a", markedRegistry(t, "old")))

	clock.advance(50 * time.Second)
	require.NoError(t, c.CacheRegistry(ctx, "/prefix/a", markedRegistry(t, "new")))

	clock.advance(30 * time.Second)
	got, ok, err := c.GetCachedRegistry(ctx, "/prefix/a")
	require.NoError(t, err)
	require.True(t, ok, "re-cache must restart the TTL")
	v, _, _ := got.GetValue(ctx, `Software\Wine`, types.NamedValue("Source"))
	assert.Equal(t, types.Sz("new"), v)
}

func TestCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Minute)
	require.NoError(t, c.CacheRegistry(ctx, "/prefix/a", markedRegistry(t, "a")))
	require.NoError(t, c.CacheRegistry(ctx, "/prefix/b", markedRegistry(t, "b")))

	require.NoError(t, c.InvalidateCache(ctx, "/prefix/a"))
	if _, ok, _ := c.GetCachedRegistry(ctx, "/prefix/a"); ok {
		t.Error("invalidated entry still served")
	}
	if _, ok, _ := c.GetCachedRegistry(ctx, "/prefix/b"); !ok {
		t.Error("unrelated entry dropped")
	}

	// Invalidating an absent entry is a no-op.
	require.NoError(t, c.InvalidateCache(ctx, "/prefix/missing"))
}

func TestCacheClearAll(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Minute)
	require.NoError(t, c.CacheRegistry(ctx, "/prefix/a", markedRegistry(t, "a")))
	require.NoError(t, c.CacheRegistry(ctx, "/prefix/b", markedRegistry(t, "b")))

	require.NoError(t, c.ClearAllCache(ctx))
	assert.Equal(t, 0, c.Stats().TotalEntries)
}

func TestCacheDefaultTTL(t *testing.T) {
	c := NewInMemoryCache(0)
	assert.Equal(t, DefaultTTL, c.defaultTTL)
	c = NewInMemoryCache(-time.Second)
	assert.Equal(t, DefaultTTL, c.defaultTTL)
}

func TestCleanupExpiredKeepsLive(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(time.Minute)
	require.NoError(t, c.CacheRegistry(ctx, "/prefix/old", markedRegistry(t, "old")))

	clock.advance(30 * time.Second)
	require.NoError(t, c.CacheRegistry(ctx, "/prefix/new", markedRegistry(t, "new")))

	clock.advance(45 * time.Second)
	require.NoError(t, c.CleanupExpired(ctx))

	stats := c.Stats()
	assert.Equal(t, 1, stats.TotalEntries)
	if _, ok, _ := c.GetCachedRegistry(ctx, "/prefix/new"); !ok {
		t.Error("live entry swept")
	}
}

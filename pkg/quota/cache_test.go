package quota

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/pkg/models"
)

type stubResolver struct {
	ctx   *models.QuotaContext
	err   error
	calls int
}

func (s *stubResolver) ResolveQuotaContext(_ context.Context, _ string) (*models.QuotaContext, error) {
	s.calls++
	return s.ctx, s.err
}

func newTestCache(t *testing.T, resolver Resolver) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb, resolver, slog.New(slog.DiscardHandler)), mr
}

func TestCacheGet(t *testing.T) {
	t.Run("miss resolves and caches", func(t *testing.T) {
		resolver := &stubResolver{ctx: &models.QuotaContext{AccountID: "acct_1", PlanID: "team"}}
		cache, mr := newTestCache(t, resolver)

		qc := cache.Get(context.Background(), "smolt-abc")
		assert.Equal(t, "team", qc.PlanID)
		assert.Equal(t, 1, resolver.calls)
		assert.True(t, mr.Exists(cacheKey("smolt-abc")))

		// Second read hits the cache.
		qc = cache.Get(context.Background(), "smolt-abc")
		assert.Equal(t, "team", qc.PlanID)
		assert.Equal(t, 1, resolver.calls)
	})

	t.Run("ttl expiry re-resolves", func(t *testing.T) {
		resolver := &stubResolver{ctx: &models.QuotaContext{PlanID: "developer"}}
		cache, mr := newTestCache(t, resolver)

		cache.Get(context.Background(), "smolt-abc")
		mr.FastForward(CacheTTL + 1)
		cache.Get(context.Background(), "smolt-abc")
		assert.Equal(t, 2, resolver.calls)
	})

	t.Run("resolver failure falls back to free tier", func(t *testing.T) {
		resolver := &stubResolver{err: errors.New("db down")}
		cache, _ := newTestCache(t, resolver)

		qc := cache.Get(context.Background(), "smolt-abc")
		require.NotNil(t, qc)
		assert.Equal(t, "free", qc.PlanID)
		assert.Equal(t, "none", qc.BillingModel)
	})

	t.Run("poisoned cache entry re-resolves", func(t *testing.T) {
		resolver := &stubResolver{ctx: &models.QuotaContext{PlanID: "team"}}
		cache, mr := newTestCache(t, resolver)

		require.NoError(t, mr.Set(cacheKey("smolt-abc"), "not json"))
		qc := cache.Get(context.Background(), "smolt-abc")
		assert.Equal(t, "team", qc.PlanID)
		assert.Equal(t, 1, resolver.calls)
	})

	t.Run("nil redis client goes straight to resolver", func(t *testing.T) {
		resolver := &stubResolver{ctx: &models.QuotaContext{PlanID: "team"}}
		cache := NewCache(nil, resolver, slog.New(slog.DiscardHandler))

		cache.Get(context.Background(), "smolt-abc")
		cache.Get(context.Background(), "smolt-abc")
		assert.Equal(t, 2, resolver.calls)
	})
}

func TestCachePurge(t *testing.T) {
	resolver := &stubResolver{ctx: &models.QuotaContext{PlanID: "team"}}
	cache, mr := newTestCache(t, resolver)

	cache.Get(context.Background(), "smolt-abc")
	require.True(t, mr.Exists(cacheKey("smolt-abc")))

	require.NoError(t, cache.Purge(context.Background(), "smolt-abc"))
	assert.False(t, mr.Exists(cacheKey("smolt-abc")))

	// Next read resolves again and sees fresh state.
	cache.Get(context.Background(), "smolt-abc")
	assert.Equal(t, 2, resolver.calls)
}

package quota

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mnemom/smoltbot/pkg/models"
)

// CacheTTL keeps quota contexts for five minutes. The cache is lossy: a miss
// or any Redis failure is treated as authoritative and triggers a re-fetch
// from the system of record.
const CacheTTL = 5 * time.Minute

// Resolver fetches the authoritative quota context for an agent.
type Resolver interface {
	ResolveQuotaContext(ctx context.Context, agentID string) (*models.QuotaContext, error)
}

// Cache is the Redis-backed quota context cache in front of a Resolver.
type Cache struct {
	rdb      *redis.Client
	resolver Resolver
	logger   *slog.Logger
}

// NewCache wires the cache. rdb may be nil, in which case every lookup goes
// to the resolver directly.
func NewCache(rdb *redis.Client, resolver Resolver, logger *slog.Logger) *Cache {
	return &Cache{
		rdb:      rdb,
		resolver: resolver,
		logger:   logger.With("component", "quota.cache"),
	}
}

func cacheKey(agentID string) string {
	return "quota:ctx:" + agentID
}

// Get returns the quota context for an agent, consulting the cache first.
// Never returns an error: any failure falls back to the free-tier default.
func (c *Cache) Get(ctx context.Context, agentID string) *models.QuotaContext {
	if c.rdb != nil {
		raw, err := c.rdb.Get(ctx, cacheKey(agentID)).Bytes()
		if err == nil {
			var qc models.QuotaContext
			if jsonErr := json.Unmarshal(raw, &qc); jsonErr == nil {
				return &qc
			}
			// Poisoned entry; drop it and re-fetch.
			c.rdb.Del(ctx, cacheKey(agentID))
		} else if err != redis.Nil {
			c.logger.WarnContext(ctx, "quota cache read failed", "agent_id", agentID, "error", err)
		}
	}

	qc, err := c.resolver.ResolveQuotaContext(ctx, agentID)
	if err != nil || qc == nil {
		if err != nil {
			c.logger.WarnContext(ctx, "quota resolution failed, using free tier",
				"agent_id", agentID, "error", err)
		}
		return models.FreeTierQuotaContext()
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(qc); err == nil {
			if err := c.rdb.Set(ctx, cacheKey(agentID), raw, CacheTTL).Err(); err != nil {
				c.logger.WarnContext(ctx, "quota cache write failed", "agent_id", agentID, "error", err)
			}
		}
	}
	return qc
}

// Purge drops the cached context so the next request re-resolves. Used after
// containment transitions.
func (c *Cache) Purge(ctx context.Context, agentID string) error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, cacheKey(agentID)).Err(); err != nil {
		return fmt.Errorf("purge quota cache for %s: %w", agentID, err)
	}
	return nil
}

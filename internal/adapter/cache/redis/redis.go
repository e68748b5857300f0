// Package redis provides a Redis-backed question set cache for deployments
// with more than one engine replica.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/internal/observability"
)

// keyNamespace prefixes every cache key so the engine can share a Redis
// instance with other services.
const keyNamespace = "qe:set:"

// Cache stores JSON-encoded question sets with a fixed TTL. Failures degrade
// to cache misses; Redis being down never blocks a generation.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New constructs a Cache over an existing client.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get returns the cached set for key, if present.
func (c *Cache) Get(ctx context.Context, key string) (domain.QuestionSet, bool) {
	b, err := c.rdb.Get(ctx, keyNamespace+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			observability.LoggerFromContext(ctx).Warn("cache get failed", "error", err)
		}
		return domain.QuestionSet{}, false
	}
	var set domain.QuestionSet
	if err := json.Unmarshal(b, &set); err != nil {
		observability.LoggerFromContext(ctx).Warn("cache entry corrupt, dropping", "key", key, "error", err)
		_ = c.rdb.Del(ctx, keyNamespace+key).Err()
		return domain.QuestionSet{}, false
	}
	return set, true
}

// Put stores set under key. Encoding or transport errors are logged and
// swallowed.
func (c *Cache) Put(ctx context.Context, key string, set domain.QuestionSet) {
	b, err := json.Marshal(set)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn("cache encode failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, keyNamespace+key, b, c.ttl).Err(); err != nil {
		observability.LoggerFromContext(ctx).Warn("cache put failed", "error", err)
	}
}

// Invalidate removes every entry whose key starts with keyPrefix. SCAN keeps
// the operation incremental on large keyspaces.
func (c *Cache) Invalidate(ctx context.Context, keyPrefix string) {
	iter := c.rdb.Scan(ctx, 0, keyNamespace+keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			observability.LoggerFromContext(ctx).Warn("cache invalidate failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		observability.LoggerFromContext(ctx).Warn("cache scan failed", "error", err)
	}
}

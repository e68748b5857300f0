// Package memory provides an in-process question set cache. It is the
// default when no Redis address is configured and the backing store for
// single-instance deployments.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/flyready/question-engine/internal/domain"
)

type entry struct {
	set       domain.QuestionSet
	expiresAt time.Time
}

// Cache is a TTL map guarded by a mutex. Expired entries are dropped lazily
// on read, so no janitor goroutine is needed.
type Cache struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]entry
	now func() time.Time
}

// New constructs a Cache. A non-positive ttl means entries never expire.
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, m: make(map[string]entry), now: time.Now}
}

// Get returns the cached set for key, if present and unexpired.
func (c *Cache) Get(_ context.Context, key string) (domain.QuestionSet, bool) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return domain.QuestionSet{}, false
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.m, key)
		c.mu.Unlock()
		return domain.QuestionSet{}, false
	}
	return e.set, true
}

// Put stores set under key with the configured TTL.
func (c *Cache) Put(_ context.Context, key string, set domain.QuestionSet) {
	var exp time.Time
	if c.ttl > 0 {
		exp = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.m[key] = entry{set: set, expiresAt: exp}
	c.mu.Unlock()
}

// Invalidate removes every entry whose key starts with keyPrefix.
func (c *Cache) Invalidate(_ context.Context, keyPrefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.m {
		if strings.HasPrefix(k, keyPrefix) {
			delete(c.m, k)
		}
	}
}

// Len reports the number of entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

package cache

import (
	"context"
	"maps"
	"time"

	gcache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/activitylog/api/activity/domain"
)

const defaultCapacity = 10000

// MemoryCache is a process-local LRU of activity records.
type MemoryCache struct {
	ttl   time.Duration
	store *gcache.Cache[string, *domain.Activity]
}

func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryCache{
		ttl: ttl,
		store: gcache.New(
			gcache.AsLRU[string, *domain.Activity](lru.WithCapacity(capacity)),
		),
	}
}

func copyActivity(a *domain.Activity) *domain.Activity {
	c := *a
	c.Details = maps.Clone(a.Details)
	return &c
}

func (c *MemoryCache) Get(ctx context.Context, id string) (*domain.Activity, bool, error) {
	a, ok := c.store.Get(id)
	if !ok {
		return nil, false, nil
	}
	return copyActivity(a), true, nil
}

func (c *MemoryCache) Set(ctx context.Context, activity *domain.Activity) error {
	if c.ttl > 0 {
		c.store.Set(activity.ID.Hex(), copyActivity(activity), gcache.WithExpiration(c.ttl))
		return nil
	}
	c.store.Set(activity.ID.Hex(), copyActivity(activity))
	return nil
}

func (c *MemoryCache) Purge(ctx context.Context) error {
	for _, key := range c.store.Keys() {
		c.store.Delete(key)
	}
	return nil
}

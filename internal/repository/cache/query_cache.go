package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"soundkey-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// QueryCache stores serialized query results. Implementations treat every
// backend failure as a miss.
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type MemoryQueryCache struct {
	cache *cache.Cache
}

func NewMemoryQueryCache(ttl time.Duration) *MemoryQueryCache {
	// expired entries are purged every ttl
	return &MemoryQueryCache{
		cache: cache.New(ttl, ttl),
	}
}

func (c *MemoryQueryCache) Get(_ context.Context, key string) ([]byte, bool) {
	if x, found := c.cache.Get(key); found {
		return x.([]byte), true
	}
	return nil, false
}

func (c *MemoryQueryCache) Set(_ context.Context, key string, value []byte) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

type RedisQueryCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisQueryCache(rdb *redis.Client, ttl time.Duration) *RedisQueryCache {
	return &RedisQueryCache{
		rdb:    rdb,
		ttl:    ttl,
		prefix: "soundkey:query:",
	}
}

func (c *RedisQueryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *RedisQueryCache) Set(ctx context.Context, key string, value []byte) {
	c.rdb.Set(ctx, c.prefix+key, value, c.ttl)
}

// specKey renders specs deterministically. Pointer fields are followed so
// two equal queries share a key.
func specKey(op string, specs []specification.Specification) string {
	var b strings.Builder
	b.WriteString(op)
	for _, s := range specs {
		raw, _ := json.Marshal(s)
		fmt.Fprintf(&b, "|%T%s", s, raw)
	}
	return b.String()
}

func lookup[T any](ctx context.Context, c QueryCache, key string) (T, bool) {
	var out T
	raw, ok := c.Get(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}

func store(ctx context.Context, c QueryCache, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.Set(ctx, key, raw)
}

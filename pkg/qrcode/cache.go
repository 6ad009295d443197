package qrcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/qrkit/core/cache"
)

// Cache stores rendered bodies by Props.Key. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
}

// MemoryCache is an in-process LRU Cache. Bodies are copied on the way in
// and out.
type MemoryCache struct {
	lru *cache.LRUCache[string, []byte]
}

// NewMemoryCache creates an in-process cache holding up to capacity renderings.
func NewMemoryCache(capacity int) *MemoryCache {
	return &MemoryCache{lru: cache.NewLRUCache[string, []byte](capacity)}
}

// Get returns the cached body for key.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	body, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(body), true, nil
}

// Set stores body under key, evicting the least recently used entry when full.
func (c *MemoryCache) Set(_ context.Context, key string, body []byte) error {
	c.lru.Put(key, bytes.Clone(body))
	return nil
}

// Len returns the number of cached renderings.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

// RedisCache shares renderings between service instances through Redis.
type RedisCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// DefaultRedisPrefix namespaces keys written by RedisCache.
const DefaultRedisPrefix = "qrkit:render:"

// NewRedisCache creates a Redis-backed cache. A zero ttl keeps entries until
// Redis evicts them.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: DefaultRedisPrefix, ttl: ttl}
}

// Get returns the cached body for key. A missing key is not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis cache get: %w", err)
	}
	return body, true, nil
}

// Set stores body under key with the configured ttl.
func (c *RedisCache) Set(ctx context.Context, key string, body []byte) error {
	if err := c.client.Set(ctx, c.prefix+key, body, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis cache set: %w", err)
	}
	return nil
}

// Package cache provides the short-lived rendered-page cache backed by Redis.
package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "krwboard:page:"

// PageCache stores fully rendered dashboard documents keyed by sort order.
// A nil *PageCache is valid and behaves as a cache that never hits, so the
// server does not need to special-case deployments without Redis.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, addr, password string, db int, ttl time.Duration) (*PageCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}

	return &PageCache{client: client, ttl: ttl}, nil
}

// Get returns the cached page for the sort key, or (nil, false) on a miss.
// Backend errors count as misses; the caller recomputes.
func (c *PageCache) Get(ctx context.Context, sortKey string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, keyPrefix+sortKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a rendered page under the sort key with the configured TTL.
func (c *PageCache) Set(ctx context.Context, sortKey string, page []byte) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, keyPrefix+sortKey, page, c.ttl).Err()
}

// Close releases the underlying Redis connection.
func (c *PageCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

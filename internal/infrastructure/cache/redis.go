package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"NewsRanker/internal/domain"
	"NewsRanker/internal/ports"
)

// RedisCache stores assembled homepages as JSON blobs with a TTL.
type RedisCache struct {
	client *redis.Client
}

var _ ports.HomepageCache = (*RedisCache)(nil)

// New connects a Redis-backed homepage cache.
func New(addr, password string, db int) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Get returns the cached homepage, or false on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (*domain.Homepage, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var homepage domain.Homepage
	if err := json.Unmarshal(raw, &homepage); err != nil {
		return nil, false, fmt.Errorf("decode cached homepage %s: %w", key, err)
	}
	return &homepage, true, nil
}

// Set stores the homepage under the key for the given TTL.
func (c *RedisCache) Set(ctx context.Context, key string, homepage domain.Homepage, ttl time.Duration) error {
	payload, err := json.Marshal(homepage)
	if err != nil {
		return fmt.Errorf("encode homepage %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

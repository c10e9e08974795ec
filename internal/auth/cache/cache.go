// Package cache holds the redis-backed identity snapshot cache. Entries are
// strictly a performance optimization: every trust decision re-checks the
// snapshot's fields, and mutations invalidate the entry before reporting
// success.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opengive/auth-service/internal/auth/domain"
)

const keyPrefix = "user:"

// RedisCache implements domain.IdentityCache over a single redis client.
// All operations are per-key; there are no cross-key transactions.
type RedisCache struct {
	client redis.UniversalClient
}

func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

func key(userID string) string {
	return keyPrefix + userID
}

// Get returns (nil, nil) on a miss.
func (c *RedisCache) Get(ctx context.Context, userID string) (*domain.IdentitySnapshot, error) {
	payload, err := c.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var snapshot domain.IdentitySnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		// A corrupt entry is treated as a miss after clearing it.
		_ = c.client.Del(ctx, key(userID)).Err()
		return nil, nil
	}
	return &snapshot, nil
}

func (c *RedisCache) Put(ctx context.Context, snapshot *domain.IdentitySnapshot, ttl time.Duration) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	if err := c.client.Set(ctx, key(snapshot.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"budgetwise/internal/models"
)

// Cache stores generated advice.
type Cache interface {
	// Get returns the cached advice and whether it was found.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, advice string) error
}

// Key identifies advice for one state of an owner's ledger: the budget
// version, bumped by every balance mutation, and a fingerprint of the
// subscriptions (count and latest update), which change the prompt too.
func Key(budget *models.Budget, subscriptions []models.Subscription) string {
	var latest int64
	for _, sub := range subscriptions {
		latest = max(latest, sub.UpdatedAt.UnixNano())
	}
	return fmt.Sprintf("advice:%s:%s:%d:%d-%d",
		budget.OwnerID, budget.ID, budget.Version, len(subscriptions), latest)
}

// RedisCache implements Cache on Redis with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a cache on an existing client.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and checks the server is reachable.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key, advice string) error {
	return c.client.Set(ctx, key, advice, c.ttl).Err()
}

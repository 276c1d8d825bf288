package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RuleCache implements usecase.RuleCache using Redis.
type RuleCache struct {
	client *redis.Client
	prefix string
}

// NewRuleCache creates a new RuleCache.
func NewRuleCache(client *redis.Client) *RuleCache {
	return &RuleCache{
		client: client,
		prefix: "rules:",
	}
}

// Get retrieves a cached rule record. A missing key is not an error; it
// returns nil bytes so callers can treat it as a miss.
func (c *RuleCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Set stores a rule record with TTL.
func (c *RuleCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

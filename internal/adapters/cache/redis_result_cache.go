package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for serialized solve responses. Entries are
// TTL-bounded so repeated identical requests skip recomputation without
// the cache ever becoming route persistence.
type RedisResultCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisResultCache(addr string, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// Ping verifies the connection; called once at startup so a misconfigured
// cache fails fast instead of on the first request.
func (c *RedisResultCache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("result cache: ping redis: %w", err)
	}
	return nil
}

func (c *RedisResultCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("result cache: get %q: %w", key, err)
	}
	return payload, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("result cache: set %q: %w", key, err)
	}
	return nil
}

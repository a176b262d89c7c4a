package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	ports "golf-content-service/internal/core/ports/output"
	"golf-content-service/internal/metrics"
)

const keyPrefix = "content:query:"

type queryCache struct {
	client goredis.UniversalClient
}

// NewQueryCache creates a query result cache backed by redis
func NewQueryCache(client goredis.UniversalClient) ports.QueryCache {
	return &queryCache{client: client}
}

func (c *queryCache) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			metrics.CacheLookups.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return json.RawMessage(val), true, nil
}

func (c *queryCache) Set(ctx context.Context, key string, doc json.RawMessage, ttl time.Duration) error {
	if err := c.client.Set(ctx, keyPrefix+key, []byte(doc), ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

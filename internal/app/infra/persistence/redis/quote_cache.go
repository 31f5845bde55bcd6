package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/app/domains/entity/etshipping"
)

const quoteKeyPrefix = "storefront:quote:"

// QuoteCache stores computed quotes as JSON with a TTL. Keys are namespaced
// under storefront:quote:.
type QuoteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewQuoteCache creates a cache whose entries expire after ttl
func NewQuoteCache(rdb *redis.Client, ttl time.Duration) *QuoteCache {
	return &QuoteCache{rdb: rdb, ttl: ttl}
}

// Get returns (nil, nil) on a miss
func (c *QuoteCache) Get(ctx context.Context, key string) (*etshipping.Quote, error) {
	raw, err := c.rdb.Get(ctx, quoteKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var q etshipping.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("decode cached quote %s failed: %w", key, err)
	}
	return &q, nil
}

// Set stores q under key
func (c *QuoteCache) Set(ctx context.Context, key string, q *etshipping.Quote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, quoteKeyPrefix+key, raw, c.ttl).Err()
}

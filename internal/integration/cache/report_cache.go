// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ledgerbook/backend/internal/application/adapter"
)

const reportKeyPrefix = "balance-sheet:"

// reportCache implements the adapter.ReportCache interface.
type reportCache struct {
	client *redis.Client
}

// NewReportCache creates a new report cache instance.
func NewReportCache(client *redis.Client) adapter.ReportCache {
	return &reportCache{
		client: client,
	}
}

// Get returns the cached report for the financial year, or (nil, nil) on a miss.
func (c *reportCache) Get(ctx context.Context, financialYear string) ([]byte, error) {
	payload, err := c.client.Get(ctx, reportKeyPrefix+financialYear).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the report for the financial year with the given TTL.
func (c *reportCache) Set(ctx context.Context, financialYear string, report []byte, ttl time.Duration) error {
	return c.client.Set(ctx, reportKeyPrefix+financialYear, report, ttl).Err()
}

// InvalidateAll removes every cached report. Any ledger write can shift
// carry-forward totals, so per-year invalidation is not enough.
func (c *reportCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, reportKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

package adapter

import (
	"context"
	"time"
)

// ReportCache caches rendered balance-sheet reports keyed by financial year.
// Writes to any ledger source table invalidate the whole cache.
type ReportCache interface {
	// Get returns the cached report payload, or (nil, nil) on a miss.
	Get(ctx context.Context, financialYear string) ([]byte, error)
	Set(ctx context.Context, financialYear string, report []byte, ttl time.Duration) error
	InvalidateAll(ctx context.Context) error
}

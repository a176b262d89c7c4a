package ports

import (
	"context"
	"encoding/json"
	"time"

	"golf-content-service/internal/core/domain"
)

// QueryCache is a short-lived cache of query results.
type QueryCache interface {
	// Get reports a miss with ok=false and a nil error.
	Get(ctx context.Context, key string) (doc json.RawMessage, ok bool, err error)
	Set(ctx context.Context, key string, doc json.RawMessage, ttl time.Duration) error
}

// SnapshotRepository keeps the last successful result of every query so reads can
// be served while the document store is unreachable.
type SnapshotRepository interface {
	Save(ctx context.Context, snap *domain.DocumentSnapshot) error
	Get(ctx context.Context, key string) (*domain.DocumentSnapshot, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

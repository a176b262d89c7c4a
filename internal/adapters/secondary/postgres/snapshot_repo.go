package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"golf-content-service/internal/core/domain"
	ports "golf-content-service/internal/core/ports/output"
)

// Schema creates the snapshot table. It is safe to run on every start.
const Schema = `
	CREATE TABLE IF NOT EXISTS content_snapshot (
		key        TEXT PRIMARY KEY,
		query_name TEXT NOT NULL,
		document   JSONB NOT NULL,
		fetched_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS content_snapshot_fetched_at_idx ON content_snapshot (fetched_at);
`

type snapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new document snapshot repository
func NewSnapshotRepository(pool *pgxpool.Pool) ports.SnapshotRepository {
	return &snapshotRepo{pool: pool}
}

// Migrate applies Schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate content_snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Save(ctx context.Context, s *domain.DocumentSnapshot) error {
	query := `
		INSERT INTO content_snapshot (key, query_name, document, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE SET
			query_name = EXCLUDED.query_name,
			document   = EXCLUDED.document,
			fetched_at = EXCLUDED.fetched_at
	`
	_, err := r.pool.Exec(ctx, query,
		s.Key,
		s.QueryName,
		[]byte(s.Document),
		s.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert content_snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Get(ctx context.Context, key string) (*domain.DocumentSnapshot, error) {
	query := `
		SELECT key, query_name, document, fetched_at
		FROM content_snapshot
		WHERE key = $1
	`
	var (
		s   domain.DocumentSnapshot
		doc []byte
	)
	err := r.pool.QueryRow(ctx, query, key).Scan(&s.Key, &s.QueryName, &doc, &s.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get content_snapshot: %w", err)
	}
	s.Document = doc
	return &s, nil
}

func (r *snapshotRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM content_snapshot WHERE fetched_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune content_snapshot: %w", err)
	}
	return tag.RowsAffected(), nil
}

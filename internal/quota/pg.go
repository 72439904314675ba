package quota

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is the PostgreSQL-backed view store. Rows are append-only; nothing
// here updates or deletes them.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a ViewStore backed by the given connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) CountViewsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	const query = `SELECT count(*) FROM contact_views WHERE user_id = $1 AND viewed_at >= $2`

	var count int
	if err := s.pool.QueryRow(ctx, query, userID, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *PGStore) HasViewSince(ctx context.Context, userID, contactID uuid.UUID, since time.Time) (bool, error) {
	const query = `SELECT EXISTS (
		SELECT 1 FROM contact_views
		WHERE user_id = $1 AND contact_id = $2 AND viewed_at >= $3
	)`

	var viewed bool
	if err := s.pool.QueryRow(ctx, query, userID, contactID, since).Scan(&viewed); err != nil {
		return false, err
	}
	return viewed, nil
}

func (s *PGStore) InsertView(ctx context.Context, userID, contactID uuid.UUID) error {
	const query = `INSERT INTO contact_views (id, user_id, contact_id, viewed_at)
		VALUES (gen_random_uuid(), $1, $2, now())`

	_, err := s.pool.Exec(ctx, query, userID, contactID)
	return err
}

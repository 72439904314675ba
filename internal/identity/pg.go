package identity

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is the PostgreSQL-backed user store.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a Store backed by the given connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// UpsertByExternalID creates or refreshes the local user row keyed by the
// external identity. A non-empty email replaces the stored one; an empty
// email leaves it alone, so callers without an email (the billing webhook)
// cannot erase what login stored.
func (s *PGStore) UpsertByExternalID(ctx context.Context, externalID, email string) (User, error) {
	const query = `
		INSERT INTO users (id, external_id, email)
		VALUES (gen_random_uuid(), $1, $2)
		ON CONFLICT (external_id)
		DO UPDATE SET email = CASE
			WHEN EXCLUDED.email = '' THEN users.email
			ELSE EXCLUDED.email
		END
		RETURNING id, external_id, email, created_at`

	var user User
	err := s.pool.QueryRow(ctx, query, externalID, email).Scan(
		&user.ID,
		&user.ExternalID,
		&user.Email,
		&user.CreatedAt,
	)
	if err != nil {
		return User{}, err
	}

	return user, nil
}

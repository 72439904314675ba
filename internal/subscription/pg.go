package subscription

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agencyscope/agencyscope/pkg/pg"
)

// PGStore is the PostgreSQL-backed subscription mirror.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a Store backed by the given connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Get(ctx context.Context, userID uuid.UUID) (Subscription, error) {
	const query = `
		SELECT user_id, provider_subscription_id, plan_id, status, current_period_end, updated_at
		FROM subscriptions
		WHERE user_id = $1`

	var sub Subscription
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&sub.UserID,
		&sub.ProviderSubID,
		&sub.PlanID,
		&sub.Status,
		&sub.CurrentPeriodEnd,
		&sub.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, err
	}

	return sub, nil
}

func (s *PGStore) Upsert(ctx context.Context, sub Subscription) (Subscription, error) {
	const query = `
		INSERT INTO subscriptions (id, user_id, provider_subscription_id, plan_id, status, current_period_end, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id)
		DO UPDATE SET
			provider_subscription_id = EXCLUDED.provider_subscription_id,
			plan_id = EXCLUDED.plan_id,
			status = EXCLUDED.status,
			current_period_end = EXCLUDED.current_period_end,
			updated_at = EXCLUDED.updated_at
		RETURNING user_id, provider_subscription_id, plan_id, status, current_period_end, updated_at`

	var stored Subscription
	err := s.pool.QueryRow(ctx, query,
		sub.UserID,
		sub.ProviderSubID,
		sub.PlanID,
		sub.Status,
		sub.CurrentPeriodEnd,
		sub.UpdatedAt,
	).Scan(
		&stored.UserID,
		&stored.ProviderSubID,
		&stored.PlanID,
		&stored.Status,
		&stored.CurrentPeriodEnd,
		&stored.UpdatedAt,
	)
	if err != nil {
		return Subscription{}, err
	}

	return stored, nil
}

func (s *PGStore) DeleteByProviderSubID(ctx context.Context, providerSubID string) error {
	const query = `DELETE FROM subscriptions WHERE provider_subscription_id = $1`

	// No row matched is fine; deletion is idempotent.
	_, err := s.pool.Exec(ctx, query, providerSubID)
	return err
}

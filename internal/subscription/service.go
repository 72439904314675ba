package subscription

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agencyscope/agencyscope/internal/billing"
	"github.com/agencyscope/agencyscope/internal/identity"
	"github.com/agencyscope/agencyscope/pkg/logger"
)

// Store persists the local subscription mirror.
type Store interface {
	// Get returns the user's subscription row or ErrNotFound.
	Get(ctx context.Context, userID uuid.UUID) (Subscription, error)
	// Upsert writes the row keyed by user id, creating or replacing it.
	Upsert(ctx context.Context, sub Subscription) (Subscription, error)
	// DeleteByProviderSubID removes the row matching the provider's
	// subscription id. Deleting a missing row is not an error.
	DeleteByProviderSubID(ctx context.Context, providerSubID string) error
}

// Option configures a Service.
type Option func(*Service)

// WithStaleAfter sets how old a locally mirrored row may be before the lazy
// pull path refreshes it from the provider.
func WithStaleAfter(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.staleAfter = d
		}
	}
}

// WithClock overrides the time source for staleness checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service maintains the eventually consistent mirror of provider
// subscription state. Webhooks are the authoritative write path; the lazy
// pull here only runs when local state is absent or stale, and degrades to
// the cached row when the provider is unreachable.
type Service struct {
	store      Store
	provider   billing.Provider
	staleAfter time.Duration
	now        func() time.Time
	log        *slog.Logger
}

// NewService returns a Service with a one-hour staleness window by default.
func NewService(store Store, provider billing.Provider, log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		store:      store,
		provider:   provider,
		staleAfter: time.Hour,
		now:        time.Now,
		log:        log.With(logger.Component("subscription")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetSubscription returns the user's subscription, nil when none exists.
// Fresh local rows are served directly; absent or stale rows trigger a
// provider pull. Provider failure falls back to whatever is stored locally.
func (s *Service) GetSubscription(ctx context.Context, user identity.User) (*Subscription, error) {
	var cached *Subscription
	local, err := s.store.Get(ctx, user.ID)
	switch {
	case err == nil:
		cached = &local
	case errors.Is(err, ErrNotFound):
		// fall through to provider pull
	default:
		s.log.ErrorContext(ctx, "failed to read local subscription", logger.Error(err), logger.UserID(user.ID))
	}

	if cached != nil && s.now().Sub(cached.UpdatedAt) < s.staleAfter {
		return cached, nil
	}

	synced, err := s.SyncFromProvider(ctx, user)
	if err != nil {
		if errors.Is(err, billing.ErrNoSubscription) {
			return nil, nil
		}
		// Degraded mode: serve the possibly stale cached row rather than
		// failing the whole page.
		s.log.WarnContext(ctx, "provider pull failed, serving cached subscription state",
			logger.Error(err), logger.UserID(user.ID))
		return cached, nil
	}

	return synced, nil
}

// SyncFromProvider fetches live provider state and mirrors it locally.
// A provider subscription without items counts as no subscription and leaves
// the local mirror untouched.
func (s *Service) SyncFromProvider(ctx context.Context, user identity.User) (*Subscription, error) {
	providerSub, err := s.provider.UserSubscription(ctx, user.ExternalID)
	if err != nil {
		return nil, err
	}

	if len(providerSub.Items) == 0 {
		return nil, billing.ErrNoSubscription
	}

	item := providerSub.Items[0]

	stored, err := s.store.Upsert(ctx, Subscription{
		UserID:           user.ID,
		ProviderSubID:    providerSub.ID,
		PlanID:           item.PlanKey,
		Status:           Status(providerSub.Status),
		CurrentPeriodEnd: item.CurrentPeriodEnd,
		UpdatedAt:        s.now(),
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToStoreSubscription, err)
	}

	s.log.InfoContext(ctx, "subscription synced from provider",
		logger.UserID(user.ID),
		logger.SubscriptionID(stored.ProviderSubID),
		logger.PlanID(stored.PlanID))

	return &stored, nil
}

// IsPro reports whether the user currently has Pro entitlement, degrading to
// false on any failure.
func (s *Service) IsPro(ctx context.Context, user identity.User) bool {
	sub, err := s.GetSubscription(ctx, user)
	if err != nil {
		return false
	}
	return sub.IsPro()
}

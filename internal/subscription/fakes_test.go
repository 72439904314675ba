package subscription_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agencyscope/agencyscope/internal/billing"
	"github.com/agencyscope/agencyscope/internal/identity"
	"github.com/agencyscope/agencyscope/internal/subscription"
)

// memStore is an in-memory subscription.Store keyed by user id.
type memStore struct {
	mu   sync.Mutex
	subs map[uuid.UUID]subscription.Subscription
	err  error
}

func newMemStore() *memStore {
	return &memStore{subs: make(map[uuid.UUID]subscription.Subscription)}
}

func (s *memStore) Get(ctx context.Context, userID uuid.UUID) (subscription.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return subscription.Subscription{}, s.err
	}
	sub, ok := s.subs[userID]
	if !ok {
		return subscription.Subscription{}, subscription.ErrNotFound
	}
	return sub, nil
}

func (s *memStore) Upsert(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return subscription.Subscription{}, s.err
	}
	s.subs[sub.UserID] = sub
	return sub, nil
}

func (s *memStore) DeleteByProviderSubID(ctx context.Context, providerSubID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	for userID, sub := range s.subs {
		if sub.ProviderSubID == providerSubID {
			delete(s.subs, userID)
		}
	}
	return nil
}

func (s *memStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *memStore) get(userID uuid.UUID) (subscription.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[userID]
	return sub, ok
}

// fakeProvider is a scripted billing.Provider.
type fakeProvider struct {
	mu    sync.Mutex
	sub   billing.Subscription
	err   error
	calls int
}

func (p *fakeProvider) UserSubscription(ctx context.Context, externalUserID string) (billing.Subscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.err != nil {
		return billing.Subscription{}, p.err
	}
	return p.sub, nil
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// memUserStore is an in-memory identity.Store for webhook tests.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]identity.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]identity.User)}
}

func (s *memUserStore) UpsertByExternalID(ctx context.Context, externalID, email string) (identity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[externalID]
	if !ok {
		user = identity.User{
			ID:         uuid.New(),
			ExternalID: externalID,
			CreatedAt:  time.Now(),
		}
	}
	if email != "" {
		user.Email = email
	}
	s.users[externalID] = user
	return user, nil
}

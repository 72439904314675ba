package api_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agencyscope/agencyscope/internal/directory"
	"github.com/agencyscope/agencyscope/internal/identity"
	"github.com/agencyscope/agencyscope/internal/subscription"
)

type viewKey struct {
	userID    uuid.UUID
	contactID uuid.UUID
}

type view struct {
	key      viewKey
	viewedAt time.Time
}

// memViewStore is an in-memory quota.ViewStore.
type memViewStore struct {
	mu    sync.Mutex
	views []view
}

func (s *memViewStore) CountViewsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, v := range s.views {
		if v.key.userID == userID && !v.viewedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (s *memViewStore) HasViewSince(ctx context.Context, userID, contactID uuid.UUID, since time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.views {
		if v.key == (viewKey{userID, contactID}) && !v.viewedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memViewStore) InsertView(ctx context.Context, userID, contactID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views = append(s.views, view{key: viewKey{userID, contactID}, viewedAt: time.Now()})
	return nil
}

func (s *memViewStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

func (s *memViewStore) seed(userID uuid.UUID, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i++ {
		s.views = append(s.views, view{
			key:      viewKey{userID, uuid.New()},
			viewedAt: time.Now(),
		})
	}
}

// memUserStore is an in-memory identity.Store.
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
		user = identity.User{ID: uuid.New(), ExternalID: externalID, CreatedAt: time.Now()}
	}
	if email != "" {
		user.Email = email
	}
	s.users[externalID] = user
	return user, nil
}

// fakeSubs is a scripted api.SubscriptionService.
type fakeSubs struct {
	sub     *subscription.Subscription
	err     error
	syncSub *subscription.Subscription
	syncErr error
}

func (f *fakeSubs) GetSubscription(ctx context.Context, user identity.User) (*subscription.Subscription, error) {
	return f.sub, f.err
}

func (f *fakeSubs) SyncFromProvider(ctx context.Context, user identity.User) (*subscription.Subscription, error) {
	return f.syncSub, f.syncErr
}

func (f *fakeSubs) IsPro(ctx context.Context, user identity.User) bool {
	return f.err == nil && f.sub.IsPro()
}

// memDirStore serves canned directory rows.
type memDirStore struct {
	agencies []directory.Agency
	contacts []directory.Contact
	states   []string
	err      error
}

func (s *memDirStore) ListAgencies(ctx context.Context, f directory.AgencyFilter) (directory.AgencyPage, error) {
	if s.err != nil {
		return directory.AgencyPage{}, s.err
	}
	return directory.AgencyPage{Agencies: s.agencies, Total: len(s.agencies), Page: 1, PageSize: directory.DefaultPageSize, TotalPages: 1}, nil
}

func (s *memDirStore) ListContacts(ctx context.Context, f directory.ContactFilter) (directory.ContactPage, error) {
	if s.err != nil {
		return directory.ContactPage{}, s.err
	}
	return directory.ContactPage{Contacts: s.contacts, Total: len(s.contacts), Page: 1, PageSize: directory.DefaultPageSize, TotalPages: 1}, nil
}

func (s *memDirStore) AllAgencies(ctx context.Context, f directory.AgencyFilter) ([]directory.Agency, error) {
	return s.agencies, s.err
}

func (s *memDirStore) AllContacts(ctx context.Context, f directory.ContactFilter) ([]directory.Contact, error) {
	return s.contacts, s.err
}

func (s *memDirStore) States(ctx context.Context) ([]string, error) {
	return s.states, s.err
}

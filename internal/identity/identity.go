package identity

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agencyscope/agencyscope/pkg/logger"
)

// User is the local mirror of an externally managed identity. Rows are
// created lazily the first time a request arrives for an unseen external
// subject and refreshed on every resolution.
type User struct {
	ID         uuid.UUID
	ExternalID string
	Email      string
	CreatedAt  time.Time
}

// Store persists local user rows.
type Store interface {
	// UpsertByExternalID creates the user row if absent and returns the
	// stored row either way. A non-empty email refreshes the stored one;
	// an empty email is ignored rather than written.
	UpsertByExternalID(ctx context.Context, externalID, email string) (User, error)
}

// Resolver maps verified external identities to local user rows.
type Resolver struct {
	store Store
	log   *slog.Logger
}

// NewResolver returns a Resolver backed by the given store.
func NewResolver(store Store, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		store: store,
		log:   log.With(logger.Component("identity")),
	}
}

// Resolve upserts and returns the local user for a verified external subject.
// A non-empty email refreshes the stored one because it can change upstream;
// callers without an email pass "" and the stored value survives.
// An empty subject means no verified identity is present; no row is created.
func (r *Resolver) Resolve(ctx context.Context, externalID, email string) (User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return User{}, ErrUnauthenticated
	}

	user, err := r.store.UpsertByExternalID(ctx, externalID, strings.TrimSpace(email))
	if err != nil {
		r.log.ErrorContext(ctx, "failed to resolve user", logger.Error(err))
		return User{}, errors.Join(ErrFailedToResolveUser, err)
	}

	return user, nil
}

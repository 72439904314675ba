package api

import (
	"context"
	"log/slog"

	"github.com/agencyscope/agencyscope/internal/directory"
	"github.com/agencyscope/agencyscope/internal/identity"
	"github.com/agencyscope/agencyscope/internal/quota"
	"github.com/agencyscope/agencyscope/internal/subscription"
	"github.com/agencyscope/agencyscope/pkg/logger"
)

// SubscriptionService is the entitlement surface the handlers need.
type SubscriptionService interface {
	GetSubscription(ctx context.Context, user identity.User) (*subscription.Subscription, error)
	SyncFromProvider(ctx context.Context, user identity.User) (*subscription.Subscription, error)
	IsPro(ctx context.Context, user identity.User) bool
}

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	tracker  *quota.Tracker
	subs     SubscriptionService
	dir      directory.Store
	exporter *directory.Exporter
	log      *slog.Logger
}

// NewHandler wires the route handlers to their domain services.
func NewHandler(tracker *quota.Tracker, subs SubscriptionService, dir directory.Store, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		tracker:  tracker,
		subs:     subs,
		dir:      dir,
		exporter: directory.NewExporter(dir),
		log:      log.With(logger.Component("api")),
	}
}

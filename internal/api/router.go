package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/agencyscope/agencyscope/internal/identity"
)

// NewRouter assembles the full route tree. The billing webhook is mounted
// outside the authenticated group: the provider signs its requests instead of
// carrying user identity.
func NewRouter(h *Handler, resolver *identity.Resolver, billingWebhook http.Handler, health http.HandlerFunc) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", health)
	r.Method(http.MethodPost, "/api/webhooks/billing", billingWebhook)

	r.Route("/api", func(r chi.Router) {
		r.Use(identity.RequireUser(resolver))

		r.Get("/agencies", h.handleListAgencies)
		r.Get("/contacts", h.handleListContacts)
		r.Get("/states", h.handleStates)

		r.Get("/views/remaining", h.handleRemainingViews)
		r.Get("/views/{contactID}", h.handleViewedToday)
		r.Post("/views", h.handleRecordView)

		r.Get("/subscription-status", h.handleSubscriptionStatus)
		r.Post("/sync-subscription", h.handleSyncSubscription)

		r.Get("/export/agencies.csv", h.handleExportAgencies)
		r.Get("/export/contacts.csv", h.handleExportContacts)
	})

	return r
}

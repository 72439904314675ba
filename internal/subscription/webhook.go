package subscription

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/agencyscope/agencyscope/internal/identity"
	"github.com/agencyscope/agencyscope/pkg/logger"
	"github.com/agencyscope/agencyscope/pkg/webhook"
)

// WebhookConfig holds webhook verification settings.
type WebhookConfig struct {
	SigningSecret string        `env:"BILLING_WEBHOOK_SECRET"`              // SigningSecret verifies inbound deliveries; empty fails closed.
	MaxAge        time.Duration `env:"BILLING_WEBHOOK_MAX_AGE" envDefault:"5m"` // MaxAge is the replay window for signature timestamps.
}

// Webhook event types emitted by the billing provider.
const (
	EventSubscriptionCreated = "subscription.created"
	EventSubscriptionUpdated = "subscription.updated"
	EventSubscriptionDeleted = "subscription.deleted"
)

// maxWebhookBody bounds the request body read for webhook deliveries.
const maxWebhookBody = int64(64 << 10)

// event is the provider's delivery envelope.
type event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// subscriptionEvent is the payload of subscription.* events. current_period_end
// is epoch seconds, absent when the provider has no period set.
type subscriptionEvent struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	PlanKey          string `json:"plan_key"`
	Status           string `json:"status"`
	CurrentPeriodEnd *int64 `json:"current_period_end"`
}

// WebhookHandler ingests signed subscription events from the billing
// provider. Both this path and the lazy pull upsert by user id, so repeated
// or out-of-order deliveries converge on provider state.
type WebhookHandler struct {
	cfg      WebhookConfig
	store    Store
	resolver *identity.Resolver
	log      *slog.Logger
}

// NewWebhookHandler returns the handler for the billing webhook endpoint.
// The identity resolver creates the local user row when an event arrives for
// a user this service has never seen.
func NewWebhookHandler(cfg WebhookConfig, store Store, resolver *identity.Resolver, log *slog.Logger) *WebhookHandler {
	if log == nil {
		log = slog.Default()
	}
	return &WebhookHandler{
		cfg:      cfg,
		store:    store,
		resolver: resolver,
		log:      log.With(logger.Component("billing_webhook")),
	}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Fail closed: without a signing secret nothing can be verified.
	if h.cfg.SigningSecret == "" {
		h.log.ErrorContext(ctx, "webhook signing secret not configured")
		http.Error(w, "webhook not configured", http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBody)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	headers, err := webhook.ExtractSignatureHeaders(r.Header)
	if err != nil {
		http.Error(w, "missing signature headers", http.StatusBadRequest)
		return
	}

	if err := webhook.VerifySignature(h.cfg.SigningSecret, payload, headers, h.cfg.MaxAge); err != nil {
		h.log.WarnContext(ctx, "webhook signature verification failed", logger.Error(err))
		http.Error(w, "signature verification failed", http.StatusBadRequest)
		return
	}

	var evt event
	if err := json.Unmarshal(payload, &evt); err != nil {
		http.Error(w, "malformed payload", http.StatusBadRequest)
		return
	}

	switch evt.Type {
	case EventSubscriptionCreated, EventSubscriptionUpdated:
		h.handleUpsert(w, r, evt)
	case EventSubscriptionDeleted:
		h.handleDelete(w, r, evt)
	default:
		// Unrecognized events are acknowledged so the provider stops retrying.
		h.log.InfoContext(ctx, "ignoring unhandled webhook event", logger.EventType(evt.Type))
		writeReceived(w)
	}
}

func (h *WebhookHandler) handleUpsert(w http.ResponseWriter, r *http.Request, evt event) {
	ctx := r.Context()

	var data subscriptionEvent
	if err := json.Unmarshal(evt.Data, &data); err != nil || data.UserID == "" || data.ID == "" {
		http.Error(w, "malformed event data", http.StatusBadRequest)
		return
	}

	// Webhooks can arrive before the user's first request; resolving here
	// creates the row lazily by the same upsert used on login.
	user, err := h.resolver.Resolve(ctx, data.UserID, "")
	if err != nil {
		h.log.ErrorContext(ctx, "failed to resolve user for webhook", logger.Error(err), logger.EventType(evt.Type))
		http.Error(w, "processing failed", http.StatusInternalServerError)
		return
	}

	var periodEnd *time.Time
	if data.CurrentPeriodEnd != nil {
		t := time.Unix(*data.CurrentPeriodEnd, 0)
		periodEnd = &t
	}

	if _, err := h.store.Upsert(ctx, Subscription{
		UserID:           user.ID,
		ProviderSubID:    data.ID,
		PlanID:           data.PlanKey,
		Status:           Status(data.Status),
		CurrentPeriodEnd: periodEnd,
		UpdatedAt:        time.Now(),
	}); err != nil {
		h.log.ErrorContext(ctx, "failed to upsert subscription from webhook",
			logger.Error(err), logger.SubscriptionID(data.ID))
		http.Error(w, "processing failed", http.StatusInternalServerError)
		return
	}

	h.log.InfoContext(ctx, "subscription webhook processed",
		logger.EventType(evt.Type),
		logger.SubscriptionID(data.ID),
		logger.PlanID(data.PlanKey))
	writeReceived(w)
}

func (h *WebhookHandler) handleDelete(w http.ResponseWriter, r *http.Request, evt event) {
	ctx := r.Context()

	var data subscriptionEvent
	if err := json.Unmarshal(evt.Data, &data); err != nil || data.ID == "" {
		http.Error(w, "malformed event data", http.StatusBadRequest)
		return
	}

	// Deleting an unknown subscription id is a success; the provider may
	// redeliver deletions we already applied.
	if err := h.store.DeleteByProviderSubID(ctx, data.ID); err != nil {
		h.log.ErrorContext(ctx, "failed to delete subscription from webhook",
			logger.Error(err), logger.SubscriptionID(data.ID))
		http.Error(w, "processing failed", http.StatusInternalServerError)
		return
	}

	h.log.InfoContext(ctx, "subscription deleted", logger.SubscriptionID(data.ID))
	writeReceived(w)
}

func writeReceived(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"received":true}`))
}

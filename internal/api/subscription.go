package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/agencyscope/agencyscope/internal/billing"
	"github.com/agencyscope/agencyscope/internal/identity"
	"github.com/agencyscope/agencyscope/internal/subscription"
	"github.com/agencyscope/agencyscope/pkg/logger"
)

type subscriptionStatusResponse struct {
	IsPro  bool   `json:"isPro"`
	PlanID string `json:"planId"`
	Status string `json:"status"`
}

// freeTierStatus is what the status endpoint reports when the user has no
// subscription or its state cannot be determined. Entitlement always degrades
// to free rather than failing the page.
func freeTierStatus() subscriptionStatusResponse {
	return subscriptionStatusResponse{
		IsPro:  false,
		PlanID: subscription.FreePlanID,
		Status: string(subscription.StatusActive),
	}
}

func (h *Handler) handleSubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sub, err := h.subs.GetSubscription(r.Context(), user)
	if err != nil || sub == nil {
		if err != nil {
			h.log.ErrorContext(r.Context(), "failed to resolve subscription status",
				logger.Error(err), logger.UserID(user.ID))
		}
		respondJSON(w, http.StatusOK, freeTierStatus())
		return
	}

	respondJSON(w, http.StatusOK, subscriptionStatusResponse{
		IsPro:  sub.IsPro(),
		PlanID: sub.PlanID,
		Status: string(sub.Status),
	})
}

type syncSubscriptionResponse struct {
	Success          bool       `json:"success"`
	IsPro            bool       `json:"isPro"`
	PlanID           string     `json:"planId"`
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd,omitempty"`
}

// handleSyncSubscription forces a live provider pull, bypassing the staleness
// window. Used by the billing settings page after checkout completes.
func (h *Handler) handleSyncSubscription(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sub, err := h.subs.SyncFromProvider(r.Context(), user)
	if err != nil {
		if errors.Is(err, billing.ErrNoSubscription) {
			respondError(w, http.StatusNotFound, "no subscription found")
			return
		}
		h.log.ErrorContext(r.Context(), "failed to sync subscription",
			logger.Error(err), logger.UserID(user.ID))
		respondError(w, http.StatusInternalServerError, "failed to sync subscription")
		return
	}

	respondJSON(w, http.StatusOK, syncSubscriptionResponse{
		Success:          true,
		IsPro:            sub.IsPro(),
		PlanID:           sub.PlanID,
		Status:           string(sub.Status),
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
	})
}

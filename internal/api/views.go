package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agencyscope/agencyscope/internal/identity"
	"github.com/agencyscope/agencyscope/pkg/logger"
)

type recordViewRequest struct {
	ContactID string `json:"contactId"`
}

type recordViewResponse struct {
	Accepted      bool `json:"accepted"`
	LimitReached  bool `json:"limitReached"`
	AlreadyViewed bool `json:"alreadyViewed,omitempty"`
}

func (h *Handler) handleRemainingViews(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	usage, err := h.tracker.Remaining(r.Context(), user.ID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to count views", logger.Error(err), logger.UserID(user.ID))
		respondError(w, http.StatusInternalServerError, "failed to fetch view count")
		return
	}

	respondJSON(w, http.StatusOK, usage)
}

// handleRecordView consumes one unit of daily quota for a contact view.
// Contacts already viewed today are replayed without recording again, and Pro
// users skip the quota gate entirely.
func (h *Handler) handleRecordView(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req recordViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	contactID, err := uuid.Parse(req.ContactID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	viewed, err := h.tracker.ViewedToday(r.Context(), user.ID, contactID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to check viewed state", logger.Error(err), logger.UserID(user.ID))
		respondError(w, http.StatusInternalServerError, "failed to record view")
		return
	}
	if viewed {
		respondJSON(w, http.StatusOK, recordViewResponse{Accepted: true, AlreadyViewed: true})
		return
	}

	result, err := h.tracker.Record(r.Context(), user.ID, contactID, h.subs.IsPro(r.Context(), user))
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to record view",
			logger.Error(err), logger.UserID(user.ID), logger.ContactID(contactID))
		respondError(w, http.StatusInternalServerError, "failed to record view")
		return
	}

	respondJSON(w, http.StatusOK, recordViewResponse{Accepted: result.Accepted, LimitReached: result.LimitReached})
}

func (h *Handler) handleViewedToday(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	contactID, err := uuid.Parse(chi.URLParam(r, "contactID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	viewed, err := h.tracker.ViewedToday(r.Context(), user.ID, contactID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to check viewed state", logger.Error(err), logger.UserID(user.ID))
		respondError(w, http.StatusInternalServerError, "failed to fetch view state")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"viewedToday": viewed})
}

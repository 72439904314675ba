package api

import (
	"net/http"

	"github.com/agencyscope/agencyscope/internal/directory"
	"github.com/agencyscope/agencyscope/pkg/logger"
)

func (h *Handler) handleExportAgencies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="agencies.csv"`)

	err := h.exporter.AgenciesCSV(r.Context(), directory.AgencyFilter{
		Search: q.Get("search"),
		State:  q.Get("state"),
	}, w)
	if err != nil {
		// Headers may already be written; all that is left is to log.
		h.log.ErrorContext(r.Context(), "agency export failed", logger.Error(err))
	}
}

func (h *Handler) handleExportContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="contacts.csv"`)

	err := h.exporter.ContactsCSV(r.Context(), directory.ContactFilter{
		Search: q.Get("search"),
		Agency: q.Get("agency"),
	}, w)
	if err != nil {
		h.log.ErrorContext(r.Context(), "contact export failed", logger.Error(err))
	}
}

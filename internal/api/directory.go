package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/agencyscope/agencyscope/internal/directory"
	"github.com/agencyscope/agencyscope/pkg/logger"
)

type agencyView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	State        string    `json:"state,omitempty"`
	StateCode    string    `json:"stateCode,omitempty"`
	Type         string    `json:"type,omitempty"`
	Population   *int64    `json:"population,omitempty"`
	Website      string    `json:"website,omitempty"`
	County       string    `json:"county,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	ContactCount int       `json:"contactCount"`
}

type contactView struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Title       string     `json:"title,omitempty"`
	Department  string     `json:"department,omitempty"`
	AgencyID    *uuid.UUID `json:"agencyId,omitempty"`
	AgencyName  string     `json:"agencyName,omitempty"`
	AgencyState string     `json:"agencyState,omitempty"`
}

type listMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

func queryInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(key))
	return v
}

func (h *Handler) handleListAgencies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.dir.ListAgencies(r.Context(), directory.AgencyFilter{
		Search:   q.Get("search"),
		State:    q.Get("state"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "limit"),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list agencies", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch agencies")
		return
	}

	agencies := make([]agencyView, 0, len(page.Agencies))
	for _, a := range page.Agencies {
		agencies = append(agencies, agencyView(a))
	}

	respondJSON(w, http.StatusOK, struct {
		Agencies []agencyView `json:"agencies"`
		listMeta
	}{
		Agencies: agencies,
		listMeta: listMeta{Total: page.Total, Page: page.Page, PageSize: page.PageSize, TotalPages: page.TotalPages},
	})
}

func (h *Handler) handleListContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.dir.ListContacts(r.Context(), directory.ContactFilter{
		Search:   q.Get("search"),
		Agency:   q.Get("agency"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "limit"),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list contacts", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch contacts")
		return
	}

	contacts := make([]contactView, 0, len(page.Contacts))
	for _, c := range page.Contacts {
		contacts = append(contacts, contactView(c))
	}

	respondJSON(w, http.StatusOK, struct {
		Contacts []contactView `json:"contacts"`
		listMeta
	}{
		Contacts: contacts,
		listMeta: listMeta{Total: page.Total, Page: page.Page, PageSize: page.PageSize, TotalPages: page.TotalPages},
	})
}

func (h *Handler) handleStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.dir.States(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list states", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch states")
		return
	}
	if states == nil {
		states = []string{}
	}
	respondJSON(w, http.StatusOK, map[string][]string{"states": states})
}

package directory

import (
	"context"

	"github.com/google/uuid"
)

// DefaultPageSize is applied when a listing request does not name one.
const DefaultPageSize = 20

// MaxPageSize caps client-supplied page sizes.
const MaxPageSize = 100

// Agency is a government agency record. Optional columns come back as empty
// strings; Population is nil when unknown.
type Agency struct {
	ID           uuid.UUID
	Name         string
	State        string
	StateCode    string
	Type         string
	Population   *int64
	Website      string
	County       string
	Phone        string
	ContactCount int
}

// Contact is a person attached to an agency. AgencyName and AgencyState are
// denormalized from the joined agency row for display and export.
type Contact struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Title       string
	Department  string
	AgencyID    *uuid.UUID
	AgencyName  string
	AgencyState string
}

// AgencyFilter narrows an agency listing. Search matches name and county,
// State matches exactly (case-insensitive). Zero PageSize on a listing call
// means DefaultPageSize; stores treat it as "no limit" for export.
type AgencyFilter struct {
	Search   string
	State    string
	Page     int
	PageSize int
}

// ContactFilter narrows a contact listing. Search matches first name, last
// name, title and department; Agency substring-matches the agency name.
type ContactFilter struct {
	Search   string
	Agency   string
	Page     int
	PageSize int
}

// AgencyPage is one page of an agency listing.
type AgencyPage struct {
	Agencies   []Agency
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// ContactPage is one page of a contact listing.
type ContactPage struct {
	Contacts   []Contact
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Store is the query surface over the agency and contact tables.
type Store interface {
	ListAgencies(ctx context.Context, filter AgencyFilter) (AgencyPage, error)
	ListContacts(ctx context.Context, filter ContactFilter) (ContactPage, error)
	// AllAgencies and AllContacts return every row matching the filter,
	// ignoring pagination. Used by CSV export.
	AllAgencies(ctx context.Context, filter AgencyFilter) ([]Agency, error)
	AllContacts(ctx context.Context, filter ContactFilter) ([]Contact, error)
	// States returns the distinct non-empty agency states, sorted.
	States(ctx context.Context) ([]string, error)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func totalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

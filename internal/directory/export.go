package directory

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
)

// Exporter streams filtered directory records as CSV.
type Exporter struct {
	store Store
}

// NewExporter returns an Exporter over the given store.
func NewExporter(store Store) *Exporter {
	return &Exporter{store: store}
}

var agencyCSVHeader = []string{"Name", "State", "State Code", "Type", "Population", "Website", "County", "Phone"}

// AgenciesCSV writes every agency matching the filter to w, ignoring
// pagination. The header row is always written, even for an empty result.
func (e *Exporter) AgenciesCSV(ctx context.Context, filter AgencyFilter, w io.Writer) error {
	agencies, err := e.store.AllAgencies(ctx, filter)
	if err != nil {
		return errors.Join(ErrFailedToExport, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(agencyCSVHeader); err != nil {
		return errors.Join(ErrFailedToExport, err)
	}
	for _, a := range agencies {
		population := ""
		if a.Population != nil {
			population = strconv.FormatInt(*a.Population, 10)
		}
		record := []string{a.Name, a.State, a.StateCode, a.Type, population, a.Website, a.County, a.Phone}
		if err := cw.Write(record); err != nil {
			return errors.Join(ErrFailedToExport, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Join(ErrFailedToExport, err)
	}
	return nil
}

var contactCSVHeader = []string{"First Name", "Last Name", "Email", "Phone", "Title", "Department", "Agency", "State"}

// ContactsCSV writes every contact matching the filter to w, ignoring
// pagination.
func (e *Exporter) ContactsCSV(ctx context.Context, filter ContactFilter, w io.Writer) error {
	contacts, err := e.store.AllContacts(ctx, filter)
	if err != nil {
		return errors.Join(ErrFailedToExport, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(contactCSVHeader); err != nil {
		return errors.Join(ErrFailedToExport, err)
	}
	for _, c := range contacts {
		record := []string{c.FirstName, c.LastName, c.Email, c.Phone, c.Title, c.Department, c.AgencyName, c.AgencyState}
		if err := cw.Write(record); err != nil {
			return errors.Join(ErrFailedToExport, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Join(ErrFailedToExport, err)
	}
	return nil
}

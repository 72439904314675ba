package directory_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencyscope/agencyscope/internal/directory"
)

// memDirStore serves canned rows; filters are applied by the real store, so
// export tests only care about row-to-CSV mapping.
type memDirStore struct {
	agencies []directory.Agency
	contacts []directory.Contact
	err      error
}

func (s *memDirStore) ListAgencies(ctx context.Context, f directory.AgencyFilter) (directory.AgencyPage, error) {
	return directory.AgencyPage{Agencies: s.agencies}, s.err
}

func (s *memDirStore) ListContacts(ctx context.Context, f directory.ContactFilter) (directory.ContactPage, error) {
	return directory.ContactPage{Contacts: s.contacts}, s.err
}

func (s *memDirStore) AllAgencies(ctx context.Context, f directory.AgencyFilter) ([]directory.Agency, error) {
	return s.agencies, s.err
}

func (s *memDirStore) AllContacts(ctx context.Context, f directory.ContactFilter) ([]directory.Contact, error) {
	return s.contacts, s.err
}

func (s *memDirStore) States(ctx context.Context) ([]string, error) {
	return nil, s.err
}

func int64ptr(v int64) *int64 { return &v }

func TestAgenciesCSV(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows", func(t *testing.T) {
		t.Parallel()

		store := &memDirStore{agencies: []directory.Agency{
			{
				ID:         uuid.New(),
				Name:       `Springfield "Unified" District`,
				State:      "Illinois",
				StateCode:  "IL",
				Type:       "School District",
				Population: int64ptr(24500),
				Website:    "https://springfield.example",
				County:     "Sangamon",
				Phone:      "555-0100",
			},
			{ID: uuid.New(), Name: "Shelbyville Parks"},
		}}

		var buf bytes.Buffer
		err := directory.NewExporter(store).AgenciesCSV(context.Background(), directory.AgencyFilter{}, &buf)
		require.NoError(t, err)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, []string{"Name", "State", "State Code", "Type", "Population", "Website", "County", "Phone"}, records[0])
		assert.Equal(t, []string{
			`Springfield "Unified" District`, "Illinois", "IL", "School District",
			"24500", "https://springfield.example", "Sangamon", "555-0100",
		}, records[1])
		assert.Equal(t, []string{"Shelbyville Parks", "", "", "", "", "", "", ""}, records[2])
	})

	t.Run("empty result still writes the header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := directory.NewExporter(&memDirStore{}).AgenciesCSV(context.Background(), directory.AgencyFilter{}, &buf)
		require.NoError(t, err)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("store failure surfaces the export error", func(t *testing.T) {
		t.Parallel()

		store := &memDirStore{err: assert.AnError}
		var buf bytes.Buffer
		err := directory.NewExporter(store).AgenciesCSV(context.Background(), directory.AgencyFilter{}, &buf)
		require.ErrorIs(t, err, directory.ErrFailedToExport)
		assert.Zero(t, buf.Len(), "nothing written on failure")
	})
}

func TestContactsCSV(t *testing.T) {
	t.Parallel()

	store := &memDirStore{contacts: []directory.Contact{
		{
			ID:          uuid.New(),
			FirstName:   "Lena",
			LastName:    "Ortiz",
			Email:       "lena@springfield.example",
			Phone:       "555-0111",
			Title:       "Superintendent",
			Department:  "Administration",
			AgencyName:  "Springfield Unified",
			AgencyState: "Illinois",
		},
	}}

	var buf bytes.Buffer
	err := directory.NewExporter(store).ContactsCSV(context.Background(), directory.ContactFilter{}, &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"First Name", "Last Name", "Email", "Phone", "Title", "Department", "Agency", "State"}, records[0])
	assert.Equal(t, []string{
		"Lena", "Ortiz", "lena@springfield.example", "555-0111",
		"Superintendent", "Administration", "Springfield Unified", "Illinois",
	}, records[1])
}

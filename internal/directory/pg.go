package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is the PostgreSQL-backed directory store.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a Store backed by the given connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

const agencyFilterClause = `
	($1 = '' OR a.name ILIKE '%' || $1 || '%' OR a.county ILIKE '%' || $1 || '%')
	AND ($2 = '' OR a.state ILIKE $2)`

const agencySelect = `
	SELECT a.id, a.name,
		COALESCE(a.state, ''), COALESCE(a.state_code, ''), COALESCE(a.type, ''),
		a.population,
		COALESCE(a.website, ''), COALESCE(a.county, ''), COALESCE(a.phone, ''),
		(SELECT count(*) FROM contacts c WHERE c.agency_id = a.id)
	FROM agencies a
	WHERE` + agencyFilterClause + `
	ORDER BY a.name`

func (s *PGStore) ListAgencies(ctx context.Context, filter AgencyFilter) (AgencyPage, error) {
	page, pageSize := normalizePage(filter.Page, filter.PageSize)

	const countQuery = `SELECT count(*) FROM agencies a WHERE` + agencyFilterClause

	var total int
	if err := s.pool.QueryRow(ctx, countQuery, filter.Search, filter.State).Scan(&total); err != nil {
		return AgencyPage{}, errors.Join(ErrFailedToListAgencies, err)
	}

	rows, err := s.pool.Query(ctx, agencySelect+` LIMIT $3 OFFSET $4`,
		filter.Search, filter.State, pageSize, (page-1)*pageSize)
	if err != nil {
		return AgencyPage{}, errors.Join(ErrFailedToListAgencies, err)
	}

	agencies, err := scanAgencies(rows)
	if err != nil {
		return AgencyPage{}, errors.Join(ErrFailedToListAgencies, err)
	}

	return AgencyPage{
		Agencies:   agencies,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *PGStore) AllAgencies(ctx context.Context, filter AgencyFilter) ([]Agency, error) {
	rows, err := s.pool.Query(ctx, agencySelect, filter.Search, filter.State)
	if err != nil {
		return nil, errors.Join(ErrFailedToListAgencies, err)
	}

	agencies, err := scanAgencies(rows)
	if err != nil {
		return nil, errors.Join(ErrFailedToListAgencies, err)
	}
	return agencies, nil
}

func scanAgencies(rows pgx.Rows) ([]Agency, error) {
	defer rows.Close()

	var agencies []Agency
	for rows.Next() {
		var a Agency
		if err := rows.Scan(
			&a.ID, &a.Name,
			&a.State, &a.StateCode, &a.Type,
			&a.Population,
			&a.Website, &a.County, &a.Phone,
			&a.ContactCount,
		); err != nil {
			return nil, err
		}
		agencies = append(agencies, a)
	}
	return agencies, rows.Err()
}

const contactFilterClause = `
	($1 = ''
		OR c.first_name ILIKE '%' || $1 || '%'
		OR c.last_name ILIKE '%' || $1 || '%'
		OR c.title ILIKE '%' || $1 || '%'
		OR c.department ILIKE '%' || $1 || '%')
	AND ($2 = '' OR a.name ILIKE '%' || $2 || '%')`

const contactSelect = `
	SELECT c.id, c.first_name, c.last_name,
		COALESCE(c.email, ''), COALESCE(c.phone, ''),
		COALESCE(c.title, ''), COALESCE(c.department, ''),
		c.agency_id, COALESCE(a.name, ''), COALESCE(a.state, '')
	FROM contacts c
	LEFT JOIN agencies a ON a.id = c.agency_id
	WHERE` + contactFilterClause + `
	ORDER BY c.first_name, c.last_name`

func (s *PGStore) ListContacts(ctx context.Context, filter ContactFilter) (ContactPage, error) {
	page, pageSize := normalizePage(filter.Page, filter.PageSize)

	const countQuery = `SELECT count(*)
		FROM contacts c
		LEFT JOIN agencies a ON a.id = c.agency_id
		WHERE` + contactFilterClause

	var total int
	if err := s.pool.QueryRow(ctx, countQuery, filter.Search, filter.Agency).Scan(&total); err != nil {
		return ContactPage{}, errors.Join(ErrFailedToListContacts, err)
	}

	rows, err := s.pool.Query(ctx, contactSelect+` LIMIT $3 OFFSET $4`,
		filter.Search, filter.Agency, pageSize, (page-1)*pageSize)
	if err != nil {
		return ContactPage{}, errors.Join(ErrFailedToListContacts, err)
	}

	contacts, err := scanContacts(rows)
	if err != nil {
		return ContactPage{}, errors.Join(ErrFailedToListContacts, err)
	}

	return ContactPage{
		Contacts:   contacts,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *PGStore) AllContacts(ctx context.Context, filter ContactFilter) ([]Contact, error) {
	rows, err := s.pool.Query(ctx, contactSelect, filter.Search, filter.Agency)
	if err != nil {
		return nil, errors.Join(ErrFailedToListContacts, err)
	}

	contacts, err := scanContacts(rows)
	if err != nil {
		return nil, errors.Join(ErrFailedToListContacts, err)
	}
	return contacts, nil
}

func scanContacts(rows pgx.Rows) ([]Contact, error) {
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName,
			&c.Email, &c.Phone,
			&c.Title, &c.Department,
			&c.AgencyID, &c.AgencyName, &c.AgencyState,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *PGStore) States(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT state FROM agencies
		WHERE state IS NOT NULL AND state <> ''
		ORDER BY state`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, errors.Join(ErrFailedToListStates, err)
	}
	defer rows.Close()

	var states []string
	for rows.Next() {
		var state string
		if err := rows.Scan(&state); err != nil {
			return nil, errors.Join(ErrFailedToListStates, err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToListStates, err)
	}
	return states, nil
}

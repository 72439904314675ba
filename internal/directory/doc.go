// Package directory serves the agency and contact listings behind the
// dashboard. It is read-only: search, filtering, pagination, the state
// dropdown, and CSV export all run over the same two tables, and nothing in
// this package mutates them.
package directory

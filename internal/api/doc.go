// Package api exposes the dashboard's REST surface: agency and contact
// listings, view-quota endpoints, subscription status, CSV export, and the
// billing webhook mount. Handlers stay thin; all domain rules live in the
// internal packages they call.
package api

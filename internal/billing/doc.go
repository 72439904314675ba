// Package billing abstracts the external billing provider behind a narrow
// Provider interface and ships a Stripe-backed implementation. The provider
// is the source of truth for subscription state; everything stored locally
// is a cache of it.
package billing

package billing

import (
	"context"
	"time"
)

// Item is a single line of a provider subscription. The first item carries
// the plan key that decides entitlement.
type Item struct {
	PlanKey          string
	CurrentPeriodEnd *time.Time
}

// Subscription is the provider's view of a user's subscription.
type Subscription struct {
	ID     string
	Status string
	Items  []Item
}

// Provider queries the billing provider for live subscription state.
// The provider is the system of record; local rows only mirror it.
type Provider interface {
	// UserSubscription returns the current subscription for the external
	// user identity, or ErrNoSubscription when the user has none.
	UserSubscription(ctx context.Context, externalUserID string) (Subscription, error)
}

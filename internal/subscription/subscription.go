package subscription

import (
	"time"

	"github.com/google/uuid"
)

// Plan keys recognized by the entitlement check. The billing provider sends
// plan keys as opaque strings; only ProPlanID unlocks Pro features.
const (
	ProPlanID  = "pro_subscription_plan"
	FreePlanID = "free_user"
)

// Status mirrors the billing provider's subscription status vocabulary.
type Status string

const (
	StatusActive     Status = "active"
	StatusCanceled   Status = "canceled"
	StatusPastDue    Status = "past_due"
	StatusUnpaid     Status = "unpaid"
	StatusIncomplete Status = "incomplete"
	StatusTrialing   Status = "trialing"
)

// Subscription is the local mirror of a user's billing-provider subscription.
// At most one row exists per user; both the webhook path and the lazy pull
// path converge on upsert-by-user-id, last writer wins.
type Subscription struct {
	UserID           uuid.UUID
	ProviderSubID    string
	PlanID           string
	Status           Status
	CurrentPeriodEnd *time.Time
	UpdatedAt        time.Time
}

// IsPro reports whether the subscription entitles the user to Pro features:
// status must be active and the plan must be the designated pro plan. Any
// other combination, including a nil subscription, is not Pro.
func (s *Subscription) IsPro() bool {
	if s == nil {
		return false
	}
	return s.Status == StatusActive && s.PlanID == ProPlanID
}

// IsActive reports whether the subscription has active status on any plan.
func (s *Subscription) IsActive() bool {
	if s == nil {
		return false
	}
	return s.Status == StatusActive
}

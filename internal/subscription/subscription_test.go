package subscription_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agencyscope/agencyscope/internal/subscription"
)

func TestIsPro(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sub  *subscription.Subscription
		want bool
	}{
		{
			name: "active pro plan",
			sub: &subscription.Subscription{
				Status: subscription.StatusActive,
				PlanID: subscription.ProPlanID,
			},
			want: true,
		},
		{
			name: "active free plan",
			sub: &subscription.Subscription{
				Status: subscription.StatusActive,
				PlanID: subscription.FreePlanID,
			},
			want: false,
		},
		{
			name: "canceled pro plan",
			sub: &subscription.Subscription{
				Status: subscription.StatusCanceled,
				PlanID: subscription.ProPlanID,
			},
			want: false,
		},
		{
			name: "past due pro plan",
			sub: &subscription.Subscription{
				Status: subscription.StatusPastDue,
				PlanID: subscription.ProPlanID,
			},
			want: false,
		},
		{
			name: "no subscription",
			sub:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.sub.IsPro())
		})
	}
}

func TestIsActive(t *testing.T) {
	t.Parallel()

	assert.True(t, (&subscription.Subscription{Status: subscription.StatusActive}).IsActive())
	assert.False(t, (&subscription.Subscription{Status: subscription.StatusTrialing}).IsActive())

	var nilSub *subscription.Subscription
	assert.False(t, nilSub.IsActive())
}

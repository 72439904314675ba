package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/subscription"
)

// StripeConfig holds billing provider API credentials.
type StripeConfig struct {
	APIKey string `env:"STRIPE_API_KEY,required"` // APIKey is the Stripe secret key.
}

// StripeProvider implements Provider against Stripe. Subscriptions are linked
// to users through the "userID" metadata key set at checkout time, so the
// lookup is a metadata search rather than a customer-id join.
type StripeProvider struct{}

// NewStripeProvider configures the Stripe client and returns a Provider.
func NewStripeProvider(cfg StripeConfig) *StripeProvider {
	stripe.Key = cfg.APIKey
	return &StripeProvider{}
}

func (p *StripeProvider) UserSubscription(ctx context.Context, externalUserID string) (Subscription, error) {
	params := &stripe.SubscriptionSearchParams{
		SearchParams: stripe.SearchParams{
			Query:   fmt.Sprintf("metadata['userID']:'%s'", externalUserID),
			Context: ctx,
		},
	}

	iter := subscription.Search(params)
	if !iter.Next() {
		if err := iter.Err(); err != nil {
			return Subscription{}, errors.Join(ErrProviderUnavailable, err)
		}
		return Subscription{}, ErrNoSubscription
	}

	sub := iter.Subscription()

	result := Subscription{
		ID:     sub.ID,
		Status: string(sub.Status),
	}

	if sub.Items != nil {
		for _, item := range sub.Items.Data {
			if item == nil || item.Price == nil {
				continue
			}

			planKey := item.Price.LookupKey
			if planKey == "" {
				planKey = item.Price.ID
			}

			var periodEnd *time.Time
			if item.CurrentPeriodEnd > 0 {
				t := time.Unix(item.CurrentPeriodEnd, 0)
				periodEnd = &t
			}

			result.Items = append(result.Items, Item{
				PlanKey:          planKey,
				CurrentPeriodEnd: periodEnd,
			})
		}
	}

	return result, nil
}

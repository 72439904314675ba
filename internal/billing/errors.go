package billing

import "errors"

var (
	// ErrNoSubscription indicates the provider has no subscription for the user.
	ErrNoSubscription = errors.New("no subscription found for user")
	// ErrProviderUnavailable indicates the provider call failed; callers should
	// degrade to locally cached state.
	ErrProviderUnavailable = errors.New("billing provider unavailable")
)

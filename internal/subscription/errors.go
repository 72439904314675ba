package subscription

import "errors"

var (
	// ErrNotFound indicates no subscription row exists for the user.
	ErrNotFound = errors.New("subscription not found")
	// ErrFailedToStoreSubscription indicates the local mirror could not be written.
	ErrFailedToStoreSubscription = errors.New("failed to store subscription")
)

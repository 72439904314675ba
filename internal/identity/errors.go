package identity

import "errors"

var (
	// ErrUnauthenticated indicates no verified identity is present on the request.
	ErrUnauthenticated = errors.New("no verified identity present")
	// ErrFailedToResolveUser indicates the local user row could not be upserted.
	ErrFailedToResolveUser = errors.New("failed to resolve local user")
)

package identity

import "context"

type contextKey struct{}

// WithUser returns a context carrying the resolved local user.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext returns the resolved user stored by the middleware.
// The boolean is false on routes that did not pass through RequireUser.
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(contextKey{}).(User)
	return user, ok
}

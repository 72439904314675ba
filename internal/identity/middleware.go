package identity

import (
	"errors"
	"net/http"
)

// Trusted headers injected by the authentication edge after token
// verification. Verification itself happens upstream; by the time a request
// reaches this service the subject is authoritative.
const (
	HeaderSubject = "X-Auth-Subject"
	HeaderEmail   = "X-Auth-Email"
)

// RequireUser rejects requests without a verified identity and resolves the
// local user row for the rest, storing it on the request context.
func RequireUser(resolver *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject := r.Header.Get(HeaderSubject)
			if subject == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := resolver.Resolve(r.Context(), subject, r.Header.Get(HeaderEmail))
			if err != nil {
				if errors.Is(err, ErrUnauthenticated) {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

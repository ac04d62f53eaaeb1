package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"recipeshare/internal/authz"
	"recipeshare/internal/models"
	"recipeshare/internal/session"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity resolves the session cookie into an identity and stores it in
// the request context. Requests without a cookie, or with an expired one,
// proceed as anonymous. A session bound to a vanished user is a hard
// failure, not a silent downgrade.
func WithIdentity(mgr *session.Manager, cookieName string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := mgr.Identity(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrSessionNotFound) {
					next.ServeHTTP(w, r)
					return
				}
				logger.Error().Err(err).Msg("resolving session identity")
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the authenticated user bound to the request, if any.
func IdentityFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(identityKey).(*models.User)
	return user, ok
}

// Require redirects anonymous requests to /login when the policy gates the
// operation. All gated failures collapse to the same redirect; there is no
// distinct forbidden or not-found signal at this layer.
func Require(policy authz.Policy, op authz.Operation, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if policy.Requires(op) {
			if _, ok := IdentityFrom(r.Context()); !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
		}
		next.ServeHTTP(w, r)
	}
}

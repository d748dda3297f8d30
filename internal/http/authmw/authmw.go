// Package authmw gates protected routes behind bearer-token verification.
package authmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/ashiqdev/taka/internal/http/respond"
)

// TokenVerifier checks a raw token and returns the subject user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type contextKey struct{}

// UserID returns the authenticated principal stored by RequireUser. It is
// the only legitimate source of an owner id; user ids arriving in request
// bodies must never be used for scoping.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)

	return id, ok
}

// WithUserID injects a principal directly, for handler tests.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// RequireUser rejects the request before any handler logic runs unless it
// carries a valid "Bearer <token>" authorization header.
func RequireUser(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.AuthError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				respond.AuthError(w, http.StatusUnauthorized, "invalid authorization header format, expected: Bearer <token>")
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				respond.AuthError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

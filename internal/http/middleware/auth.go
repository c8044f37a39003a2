package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Alvarenga144/InventorySuite/internal/http/respond"
	"github.com/Alvarenga144/InventorySuite/internal/user"
)

type contextKey struct{ name string }

var identityKey = contextKey{"identity"}

// IdentityFrom returns the authenticated caller stored by Auth.
func IdentityFrom(ctx context.Context) (*user.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*user.Identity)
	return id, ok
}

// Auth rejects requests without a valid bearer token and stores the verified
// identity in the request context. Token verification is stateless; there is
// no server-side session.
func Auth(tokens *user.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respond.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Pesokrava/product_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/product_catalog/internal/pkg/auth"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

type contextKey string

const identityKey contextKey = "identity"

// RequireAuth returns a middleware that rejects requests without a valid
// Bearer token. Read routes stay outside this middleware; writes go through
// it. The validated identity is stored in the request context.
func RequireAuth(tokens *auth.JWTManager, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Error(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				response.Error(w, r, http.StatusUnauthorized, "Authorization header format must be 'Bearer <token>'")
				return
			}

			identity, err := tokens.Validate(parts[1])
			if err != nil {
				log.Debugf("Token validation failed: %v", err)
				response.Error(w, r, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// WithIdentity returns a context carrying the authenticated caller
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the authenticated caller, if any
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*auth.Identity)
	return identity, ok
}

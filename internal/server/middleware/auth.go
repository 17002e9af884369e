// Package middleware provides HTTP middleware for authentication and request identification.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// ProxySecretHeader is the header a fronting proxy stamps on each request.
const ProxySecretHeader = "X-Proxy-Secret"

// metaEndpoints are reachable without credentials so load balancers and
// directory listings keep working.
var metaEndpoints = map[string]bool{
	"/":       true,
	"/health": true,
}

// TokenValidator is an interface for validating bearer tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) error
}

// ProxySecret creates middleware that rejects requests missing the shared
// proxy secret header. An empty configured secret disables the check.
func ProxySecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if metaEndpoints[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(ProxySecretHeader)
			if got == "" {
				http.Error(w, "Missing "+ProxySecretHeader+" header", http.StatusUnauthorized)
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				http.Error(w, "Invalid "+ProxySecretHeader+" header", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BearerAuth creates middleware that validates a JWT bearer token on every
// non-meta request. A nil validator disables the check.
func BearerAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if validator == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if metaEndpoints[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Case-insensitive "Bearer" prefix.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if err := validator.ValidateToken(parts[1]); err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

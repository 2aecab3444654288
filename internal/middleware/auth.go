// Package middleware provides HTTP middleware for bearer-token authentication,
// request identification, and rate limiting.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// TokenVerifier validates a bearer token string and reconstructs the caller
// identity from its claims.
type TokenVerifier interface {
	Verify(tokenString string) (domain.Identity, error)
}

// Authenticate extracts and verifies the Authorization Bearer token on every
// request, attaching the resolved identity to the request context. A missing,
// malformed, expired, or tampered token short-circuits with 401 before any
// storage lookup runs. Routes exempt from authentication (registration,
// login, existence probes) are simply mounted outside this middleware.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeUnauthenticated(w)
				return
			}

			identity, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeUnauthenticated(w)
				return
			}

			ctx := domain.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":    domain.CodeUnauthenticated,
		"message": "provide a valid bearer token",
	})
}

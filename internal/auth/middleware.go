package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// ClaimsFromContext returns the verified claims stashed by RequireRole.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// RequireRole verifies the bearer token and grants access when the caller
// holds at least one of the required roles. An absent or unverifiable token
// is 401; a verified caller lacking every required role is 403.
func RequireRole(tokens *TokenService, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Not Authorized", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Not Authorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				http.Error(w, "Not Authorized", http.StatusUnauthorized)
				return
			}

			if !holdsAny(claims.Roles, roles) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func holdsAny(held, required []string) bool {
	for _, want := range required {
		for _, have := range held {
			if have == want {
				return true
			}
		}
	}
	return false
}

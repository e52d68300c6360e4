// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userKey ctxKey = "user"

// TokenValidator validates a presented bearer token and returns the
// authenticated subject.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// allowList holds the request paths exempt from authentication.
var allowList = map[string]bool{
	"/register": true,
	"/login":    true,
	"/docs":     true,
}

// TokenAuth is a middleware that gates every request on a bearer token.
//
// Allow-listed paths (registration, login, docs) pass through without
// inspection. Every other request must carry an Authorization header of
// the exact form "Bearer <token>"; the token must verify and still be
// present in the token store. Rejections short-circuit with 403.
//
// On success the token subject (the user's email) is stored in the
// request context for downstream handlers.
func TokenAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowList[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Token missing or invalid", http.StatusForbidden)
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")

			subject, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext extracts the authenticated user's email from the
// request context. Returns an empty string if not found.
func GetUserFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

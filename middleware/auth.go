package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const UserContextKey contextKey = "user_id"

// UserID returns the authenticated user id from the request context, or ""
// for anonymous requests.
func UserID(r *http.Request) string {
	if uid, ok := r.Context().Value(UserContextKey).(string); ok {
		return uid
	}
	return ""
}

// RequireAuth rejects requests without a valid bearer token and puts the
// user id into the request context.
func RequireAuth(jwtSecretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := claimsFromRequest(r, jwtSecretKey)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserContextKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches the user id when a valid token is present and lets
// anonymous requests through untouched. Generation and resolution work for
// guests; they just get guest attribution and no cookbook.
func OptionalAuth(jwtSecretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := claimsFromRequest(r, jwtSecretKey); ok {
				ctx := context.WithValue(r.Context(), UserContextKey, claims.UserID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func claimsFromRequest(r *http.Request, jwtSecretKey []byte) (*Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := ValidateJWT(parts[1], jwtSecretKey)
	if err != nil {
		return nil, false
	}
	return claims, true
}

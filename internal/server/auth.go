package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"focusd/internal/domain"
	"focusd/internal/logging"
	"focusd/internal/ports"
)

// TokenCookie is the cookie the web client stores its API token in
const TokenCookie = "focusd_token"

type contextKey string

const userIDKey contextKey = "userID"

// authMiddleware resolves the caller's API token to a user id and puts
// it in the request context. Requests without credentials are rejected
// before any store access.
func authMiddleware(auth ports.TokenAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				respondError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrTokenNotFound) {
					logging.Logger.Warn("unauthorized token",
						"remote_addr", r.RemoteAddr,
						"path", r.URL.Path)
				} else {
					logging.Logger.Error("token lookup failed", "error", err)
				}
				respondError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the bearer token, falling back to the client cookie
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// UserID returns the authenticated user id stored by authMiddleware
func UserID(r *http.Request) string {
	userID, ok := r.Context().Value(userIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/example/boho-storefront/internal/session"
)

// SessionCookie is the cookie carrying the guest session token.
const SessionCookie = "session_token"

type contextKey string

const sessionContextKey contextKey = "session"

// ExtractToken extracts the session token from cookie or Authorization header
func ExtractToken(r *http.Request) string {
	// Try cookie first (for browser)
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	// Fall back to Authorization header (for API clients)
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SessionMiddleware resolves the guest session for every request. A request
// without a valid token gets a fresh session minted and set as a cookie;
// requests are never rejected for lacking one.
func SessionMiddleware(sessionSvc *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if tokenString := ExtractToken(r); tokenString != "" {
				if id, err := sessionSvc.Validate(tokenString); err == nil {
					sessionID = id
				}
			}

			if sessionID == "" {
				id, token, err := sessionSvc.Issue()
				if err != nil {
					http.Error(w, "failed to create session", http.StatusInternalServerError)
					return
				}
				sessionID = id
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    token,
					Path:     "/",
					MaxAge:   int(sessionSvc.Expiry().Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID retrieves the session id from the request context
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionContextKey).(string)
	return id
}

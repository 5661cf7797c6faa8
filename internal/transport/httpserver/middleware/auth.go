package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"gymdesk/internal/auth"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "access_token"

type contextKey int

const adminKey contextKey = iota

// SessionAuth rejects requests without a valid session cookie. A missing
// cookie and an invalid/expired one are reported with distinct statuses so
// the client can tell "never logged in" from "session went bad".
type SessionAuth struct {
	tokens *auth.TokenIssuer
}

func NewSessionAuth(tokens *auth.TokenIssuer) *SessionAuth {
	return &SessionAuth{tokens: tokens}
}

func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "access denied: you are not logged in")
			return
		}

		claims, err := a.tokens.Verify(cookie.Value)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid token: please login again")
			return
		}

		ctx := WithAdmin(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithAdmin(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, adminKey, claims)
}

func AdminFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(adminKey).(*auth.Claims)
	if !ok || claims == nil || claims.AdminID == "" {
		return nil, false
	}
	return claims, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/auth"
)

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := AdminFromContext(r.Context())
		require.True(t, ok, "claims must be on the request context")
		assert.Equal(t, "admin-1", claims.AdminID)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestSessionAuthMissingCookie(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	session := NewSessionAuth(issuer)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)

	session.Middleware(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success": false, "message": "access denied: you are not logged in"}`, rec.Body.String())
}

func TestSessionAuthBadToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	session := NewSessionAuth(issuer)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered.token.value"})

	session.Middleware(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"success": false, "message": "invalid token: please login again"}`, rec.Body.String())
}

func TestSessionAuthExpiredToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", -time.Minute)
	session := NewSessionAuth(issuer)

	token, err := issuer.Issue("admin-1", "alex@example.com")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	session.Middleware(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSessionAuthValidToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	session := NewSessionAuth(issuer)

	token, err := issuer.Issue("admin-1", "alex@example.com")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	session.Middleware(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

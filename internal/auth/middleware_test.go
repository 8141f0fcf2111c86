package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(t *testing.T, svc *TokenService, roles ...string) http.Handler {
	t.Helper()
	return RequireRole(svc, roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireRole_MissingHeader(t *testing.T) {
	svc := newTestTokenService(15 * time.Minute)
	handler := protected(t, svc, "Reader")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_MalformedHeader(t *testing.T) {
	svc := newTestTokenService(15 * time.Minute)
	handler := protected(t, svc, "Reader")

	req := httptest.NewRequest(http.MethodGet, "/api/regions", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(15 * time.Minute)
	expired := newTestTokenService(-1 * time.Hour)
	handler := protected(t, svc, "Reader")

	token, err := expired.Issue("user@example.com", []string{"Reader"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/regions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_InsufficientRole(t *testing.T) {
	svc := newTestTokenService(15 * time.Minute)
	handler := protected(t, svc, "Writer")

	// A Reader-only caller must be denied a Writer endpoint no matter what
	// else the request carries.
	token, err := svc.Issue("reader@example.com", []string{"Reader"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/regions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	svc := newTestTokenService(15 * time.Minute)
	handler := protected(t, svc, "Writer")

	token, err := svc.Issue("writer@example.com", []string{"Reader", "Writer"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/regions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_AnyOfSeveral(t *testing.T) {
	svc := newTestTokenService(15 * time.Minute)
	handler := protected(t, svc, "Reader", "Writer")

	token, err := svc.Issue("reader@example.com", []string{"Reader"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/walks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/dto"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/service"
)

type fakeAuthService struct {
	registerErr error
	loginToken  string
	loginErr    error
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string, roles []string) error {
	return f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func TestRegister_Success(t *testing.T) {
	h := NewAuth(&fakeAuthService{})

	body := jsonBody(t, dto.RegisterRequestDto{
		Username: "user@example.com",
		Password: "secret1",
		Roles:    []string{"Reader"},
	})
	rec := httptest.NewRecorder()
	require.NoError(t, h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "registered")
}

func TestRegister_ServiceFailureIsBadRequest(t *testing.T) {
	h := NewAuth(&fakeAuthService{registerErr: service.ErrRegistration})

	body := jsonBody(t, dto.RegisterRequestDto{
		Username: "user@example.com",
		Password: "secret1",
		Roles:    []string{"Reader"},
	})
	rec := httptest.NewRecorder()
	require.NoError(t, h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidPayload(t *testing.T) {
	h := NewAuth(&fakeAuthService{})

	body := jsonBody(t, dto.RegisterRequestDto{Username: "not-an-email", Password: "x"})
	rec := httptest.NewRecorder()
	require.NoError(t, h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Contains(t, envelope.Errors, "username")
	assert.Contains(t, envelope.Errors, "password")
	assert.Contains(t, envelope.Errors, "roles")
}

func TestLogin_ReturnsToken(t *testing.T) {
	h := NewAuth(&fakeAuthService{loginToken: "signed.jwt.token"})

	body := jsonBody(t, dto.LoginRequestDto{Username: "user@example.com", Password: "secret1"})
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.LoginResponseDto
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed.jwt.token", resp.JwtToken)
}

func TestLogin_BadCredentials(t *testing.T) {
	h := NewAuth(&fakeAuthService{loginErr: service.ErrInvalidCredentials})

	body := jsonBody(t, dto.LoginRequestDto{Username: "user@example.com", Password: "wrong"})
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect username or password")
}

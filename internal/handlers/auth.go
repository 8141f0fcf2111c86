package handlers

import (
	"errors"
	"net/http"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/dto"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/service"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/validation"
)

// Auth serves the /api/auth endpoints. Neither requires a token.
type Auth struct {
	svc service.AuthService
}

func NewAuth(svc service.AuthService) *Auth {
	return &Auth{svc: svc}
}

// Register handles POST /api/auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) error {
	var req dto.RegisterRequestDto
	if ok, err := decodeBody(w, r, &req); !ok {
		return err
	}
	if violations := validation.Check(req); violations != nil {
		return writeViolations(w, violations)
	}

	if err := h.svc.Register(r.Context(), req.Username, req.Password, req.Roles); err != nil {
		if errors.Is(err, service.ErrRegistration) {
			return writeText(w, http.StatusBadRequest, "Something went wrong")
		}
		return err
	}
	return writeText(w, http.StatusOK, "User was registered! Please login.")
}

// Login handles POST /api/auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) error {
	var req dto.LoginRequestDto
	if ok, err := decodeBody(w, r, &req); !ok {
		return err
	}
	if violations := validation.Check(req); violations != nil {
		return writeViolations(w, violations)
	}

	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return writeText(w, http.StatusBadRequest, "Incorrect username or password")
		}
		return err
	}
	return writeJSON(w, http.StatusOK, dto.LoginResponseDto{JwtToken: token})
}

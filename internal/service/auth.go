// Package service holds the credential and role logic sitting between the
// auth handlers and the user store.
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/auth"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/repository"
	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrRegistration       = errors.New("registration failed")
)

// AuthService creates accounts and exchanges credentials for access tokens.
type AuthService interface {
	Register(ctx context.Context, username, password string, roles []string) error
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register hashes the password and stores the account with its role set.
// The user row and the role assignments commit or roll back together.
func (s *authService) Register(ctx context.Context, username, password string, roles []string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateWithRoles(ctx, &user, roles); err != nil {
		return fmt.Errorf("%w: %v", ErrRegistration, err)
	}
	return nil
}

// Login verifies the password and mints a token carrying the user's roles.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.RoleNames())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

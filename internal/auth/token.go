// Package auth issues and verifies the bearer tokens that gate the API, and
// provides the middleware enforcing per-route role requirements.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the payload carried by every access token: the subject identity
// plus one entry per role the bearer holds.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HMAC-SHA256 signed tokens. Expiry is the
// only lifetime bound; there is no refresh or revocation mechanism.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

func NewTokenService(secret, issuer, audience string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}
}

// Issue creates a signed token embedding the username and role claims.
func (s *TokenService) Issue(username string, roles []string) (string, error) {
	now := time.Now()
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and validates signature, issuer, audience and
// expiry. Any failure means the caller is unauthenticated.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

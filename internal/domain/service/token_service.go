package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by issued bearer tokens. The
// token is bound to the authenticated user's email address.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the signed,
// time-limited bearer token handed out after a successful authentication.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed token bound to the given email.
	Generate(email string) (string, error)

	// Validate checks the validity of a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}

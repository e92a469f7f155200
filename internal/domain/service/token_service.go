package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are carried by the signed session cookie.
type SessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and verifies the browser session cookie value.
type SessionTokenService interface {
	// GenerateSessionToken creates a signed session token for userID.
	GenerateSessionToken(userID string) (string, error)

	// ValidateSessionToken verifies signature and expiry and returns the claims.
	ValidateSessionToken(token string) (*SessionClaims, error)

	// SessionDuration is the lifetime of generated session tokens.
	SessionDuration() time.Duration
}

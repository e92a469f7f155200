// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"checkin/config"
	"checkin/internal/domain/service"
	"checkin/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionIssuer = "checkin"

// jwtService signs the browser session cookie with HS256.
type jwtService struct {
	secret     []byte
	sessionTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := time.Duration(0)
	if cfg.Session != nil {
		ttl = cfg.Session.TokenTTL
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.Session),
		sessionTTL: ttl,
		now:        time.Now,
	}, nil
}

// GenerateSessionToken creates a signed session token for userID.
func (s *jwtService) GenerateSessionToken(userID string) (string, error) {
	now := s.now()
	claims := &service.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    sessionIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateSessionToken checks signature, algorithm, issuer and expiry.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

// SessionDuration returns the configured lifetime of session tokens.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}

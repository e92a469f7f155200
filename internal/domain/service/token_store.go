package service

import (
	"context"
	"time"

	"checkin/internal/errors"
)

var (
	// ErrTokenNotFound is returned when a bearer token was never issued or was revoked.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenExpired is returned when a bearer token outlived its TTL.
	ErrTokenExpired = errors.New("token expired")
)

// TokenStore issues opaque bearer tokens and maps them back to user IDs.
// Implementations must survive process restarts when backed by an external store.
type TokenStore interface {
	// Issue creates a new token for userID valid for the store's TTL.
	Issue(ctx context.Context, userID string) (string, error)

	// Resolve returns the user ID owning token, or ErrTokenNotFound / ErrTokenExpired.
	Resolve(ctx context.Context, token string) (string, error)

	// Revoke invalidates token immediately. Unknown tokens are not an error.
	Revoke(ctx context.Context, token string) error

	// RevokeExpired removes every expired token and reports how many were removed.
	RevokeExpired(ctx context.Context) (int, error)

	// TTL is the lifetime of newly issued tokens.
	TTL() time.Duration
}

package service

import (
	"context"
	"time"
)

// SessionRevocationStore remembers signed session tokens that were revoked
// before they expired, keyed by their token ID (jti).
type SessionRevocationStore interface {
	// Revoke rejects sessionID until expiresAt. Already expired IDs are ignored.
	Revoke(ctx context.Context, sessionID string, expiresAt time.Time) error

	// IsRevoked reports whether sessionID was revoked.
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

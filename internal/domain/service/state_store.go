package service

import (
	"context"
	"time"
)

// StateStore keeps OAuth state values between login and callback.
type StateStore interface {
	// Save remembers state for ttl.
	Save(ctx context.Context, state string, ttl time.Duration) error

	// Consume deletes state and reports whether it was present and unexpired.
	Consume(ctx context.Context, state string) (bool, error)
}

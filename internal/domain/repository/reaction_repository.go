package repository

import (
	"context"

	"checkin/internal/domain/entity"
	"checkin/internal/errors"
)

// ErrReactionAlreadyExists is returned when the user already reacted on that date.
var ErrReactionAlreadyExists = errors.New("reaction already exists for user and date")

// ReactionRepository stores reactions to check-ins.
type ReactionRepository interface {
	// Create inserts a reaction, returning ErrReactionAlreadyExists when the
	// (user_id, reaction_date) constraint rejects it.
	Create(ctx context.Context, reaction *entity.Reaction) error

	// CountByCheckInIDs aggregates reactions per check-in. Missing IDs have no entry.
	CountByCheckInIDs(ctx context.Context, checkInIDs []int64) (map[int64]entity.ReactionCount, error)
}

package service

import (
	"context"
	"time"

	"checkin/internal/domain/entity"
)

// LeaderboardCache stores built daily leaderboards keyed by date.
//
// Every date carries a generation that Invalidate advances. A writer reads the
// generation before building a board and hands it to Set, so a board built
// from rows read before an invalidation is never stored after it.
type LeaderboardCache interface {
	// Get returns the cached leaderboard and whether it was present.
	Get(ctx context.Context, date time.Time) (*entity.Leaderboard, bool, error)

	// Generation returns the current generation of date.
	Generation(ctx context.Context, date time.Time) (int64, error)

	// Set stores the leaderboard under its date when the date's generation
	// still equals generation, and reports whether it was stored.
	Set(ctx context.Context, board *entity.Leaderboard, generation int64) (bool, error)

	// Invalidate drops the cached leaderboard for date and advances its generation.
	Invalidate(ctx context.Context, date time.Time) error
}

package repository

import (
	"context"
	"time"

	"checkin/internal/domain/entity"
	"checkin/internal/errors"
)

var (
	// ErrCheckInNotFound is returned when no check-in matches the lookup.
	ErrCheckInNotFound = errors.New("check-in not found")

	// ErrCheckInAlreadyExists is returned by Create when the storage-level
	// (user_id, check_in_date) constraint rejects the row.
	ErrCheckInAlreadyExists = errors.New("check-in already exists for user and date")
)

// CheckInRepository is the append-only ledger of committed check-ins.
type CheckInRepository interface {
	// Create inserts a check-in and writes the generated ID back.
	// It returns ErrCheckInAlreadyExists on a uniqueness violation.
	Create(ctx context.Context, checkIn *entity.CheckIn) error

	// FindByID retrieves a check-in by ID, without its photo.
	FindByID(ctx context.Context, id int64) (*entity.CheckIn, error)

	// FindByUserAndDate is the point lookup on (user, date).
	FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*entity.CheckIn, error)

	// ListEntriesByDate returns the date's check-ins joined with their owners,
	// ordered by check-in time then insertion sequence.
	ListEntriesByDate(ctx context.Context, date time.Time, withPhoto bool) ([]*entity.CheckInEntry, error)

	// ListRecentDates returns distinct check-in dates, newest first, at most limit.
	ListRecentDates(ctx context.Context, limit int) ([]time.Time, error)

	// ListEntriesByDates returns photo-less entries for all given dates,
	// ordered by date descending, then check-in time and insertion sequence.
	ListEntriesByDates(ctx context.Context, dates []time.Time) ([]*entity.CheckInEntry, error)
}

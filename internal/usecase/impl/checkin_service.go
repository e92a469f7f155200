// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/geofence"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	msgLocationVerified = "Location verified! Take a photo to complete check-in."
	msgCheckedIn        = "Checked in successfully!"
)

// checkInService implements the CheckInUsecase interface.
type checkInService struct {
	checkInRepo repository.CheckInRepository
	boardCache  service.LeaderboardCache
	publisher   service.EventPublisher
	fence       geofence.Fence
	location    *time.Location
	logger      *slog.Logger
	now         func() time.Time
}

// NewCheckInService is the constructor for checkInService.
func NewCheckInService(
	checkInRepo repository.CheckInRepository,
	boardCache service.LeaderboardCache,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckInUsecase {
	return &checkInService{
		checkInRepo: checkInRepo,
		boardCache:  boardCache,
		publisher:   publisher,
		fence:       fenceFromConfig(cfg),
		location:    cfg.Location(),
		logger:      logger,
		now:         time.Now,
	}
}

func fenceFromConfig(cfg *config.Config) geofence.Fence {
	if cfg.Geofence == nil {
		return geofence.Default()
	}

	return geofence.Fence{
		Center:       geofence.NewPoint(cfg.Geofence.Latitude, cfg.Geofence.Longitude),
		RadiusMeters: cfg.Geofence.RadiusMeters,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkInService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyLocation runs the geofence and uniqueness checks without writing.
func (srv *checkInService) VerifyLocation(ctx context.Context, userID string, input usecase.VerifyLocationInput) (*usecase.VerifyLocationOutput, error) {
	if input.Latitude == nil || input.Longitude == nil {
		return nil, domainerrors.ErrMissingCoordinates
	}

	eval, err := srv.evaluate(*input.Latitude, *input.Longitude)
	if err != nil {
		return nil, err
	}

	today := entity.CivilDate(srv.now(), srv.location)
	if err := srv.ensureNotCheckedIn(ctx, userID, today); err != nil {
		return nil, err
	}

	return &usecase.VerifyLocationOutput{
		Distance:      geofence.RoundDistance(eval.Distance),
		AllowedRadius: eval.Radius,
		Latitude:      *input.Latitude,
		Longitude:     *input.Longitude,
		Message:       msgLocationVerified,
	}, nil
}

// CheckIn validates coordinates, photo, geofence and the (user, today) slot in
// that order, then inserts. The storage unique index decides concurrent races.
func (srv *checkInService) CheckIn(ctx context.Context, userID string, input usecase.CheckInInput) (*usecase.CheckInOutput, error) {
	if input.Latitude == nil || input.Longitude == nil {
		return nil, domainerrors.ErrMissingCoordinates
	}
	if input.Photo == "" {
		return nil, domainerrors.ErrMissingPhoto
	}

	eval, err := srv.evaluate(*input.Latitude, *input.Longitude)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	today := entity.CivilDate(now, srv.location)
	if err := srv.ensureNotCheckedIn(ctx, userID, today); err != nil {
		return nil, err
	}

	checkIn := &entity.CheckIn{
		UserID:      userID,
		Date:        today,
		CheckInTime: now,
		Location:    geofence.NewPoint(*input.Latitude, *input.Longitude),
		Photo:       input.Photo,
	}

	if err := srv.checkInRepo.Create(ctx, checkIn); err != nil {
		if errors.Is(err, repository.ErrCheckInAlreadyExists) {
			return nil, srv.alreadyCheckedIn(ctx, userID, today)
		}

		srv.log(ctx).Error("Failed to create check-in", slog.Any("error", err), slog.String("user_id", userID))

		return nil, errors.Wrap(err, "failed to create check-in")
	}

	srv.log(ctx).Info("Check-in recorded",
		slog.Int64("checkin_id", checkIn.ID),
		slog.String("user_id", userID),
		slog.String("date", entity.FormatDate(today)),
		slog.Float64("distance", eval.Distance),
	)

	srv.afterCheckIn(ctx, checkIn)

	return &usecase.CheckInOutput{
		CheckInID:   checkIn.ID,
		CheckInTime: checkIn.CheckInTime,
		Distance:    geofence.RoundDistance(eval.Distance),
		Message:     msgCheckedIn,
	}, nil
}

// Status reports whether the user already holds today's check-in.
func (srv *checkInService) Status(ctx context.Context, userID string) (*usecase.StatusOutput, error) {
	today := entity.CivilDate(srv.now(), srv.location)

	existing, err := srv.checkInRepo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			return &usecase.StatusOutput{CheckedIn: false}, nil
		}

		return nil, errors.Wrap(err, "failed to look up today's check-in")
	}

	checkInTime := existing.CheckInTime

	return &usecase.StatusOutput{CheckedIn: true, CheckInTime: &checkInTime}, nil
}

func (srv *checkInService) evaluate(lat, lng float64) (geofence.Evaluation, error) {
	eval, err := srv.fence.Evaluate(geofence.NewPoint(lat, lng))
	if err != nil {
		return geofence.Evaluation{}, domainerrors.ErrInvalidCoordinates
	}
	if !eval.Within {
		return eval, domainerrors.NewOutOfRangeError(geofence.RoundDistance(eval.Distance), eval.Radius)
	}

	return eval, nil
}

func (srv *checkInService) ensureNotCheckedIn(ctx context.Context, userID string, date time.Time) error {
	existing, err := srv.checkInRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to look up existing check-in")
	}

	return domainerrors.NewAlreadyCheckedInError(existing.CheckInTime)
}

// alreadyCheckedIn re-reads the row that won the insert race so the caller
// sees the committed timestamp.
func (srv *checkInService) alreadyCheckedIn(ctx context.Context, userID string, date time.Time) error {
	winner, err := srv.checkInRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return errors.Wrap(err, "failed to read conflicting check-in")
	}

	srv.log(ctx).Info("Concurrent check-in lost the race", slog.String("user_id", userID))

	return domainerrors.NewAlreadyCheckedInError(winner.CheckInTime)
}

// afterCheckIn drops the cached board and announces the check-in. Failures
// here are logged only; the check-in itself is already committed.
func (srv *checkInService) afterCheckIn(ctx context.Context, checkIn *entity.CheckIn) {
	if err := srv.boardCache.Invalidate(ctx, checkIn.Date); err != nil {
		srv.log(ctx).Warn("Failed to invalidate leaderboard cache", slog.Any("error", err))
	}

	event := &service.CheckInEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		CheckInID:   checkIn.ID,
		UserID:      checkIn.UserID,
		Date:        entity.FormatDate(checkIn.Date),
		CheckInTime: checkIn.CheckInTime.Format(time.RFC3339Nano),
	}
	if err := srv.publisher.PublishCheckInEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish check-in event",
			slog.Any("error", err),
			slog.Int64("checkin_id", checkIn.ID),
		)
	}
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"
	"checkin/internal/usecase"

	"github.com/pkg/errors"
)

// reactionService implements the ReactionUsecase interface.
type reactionService struct {
	txManager  repository.TransactionManager
	boardCache service.LeaderboardCache
	location   *time.Location
	logger     *slog.Logger
	now        func() time.Time
}

// NewReactionService is the constructor for reactionService.
func NewReactionService(
	txManager repository.TransactionManager,
	boardCache service.LeaderboardCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReactionUsecase {
	return &reactionService{
		txManager:  txManager,
		boardCache: boardCache,
		location:   cfg.Location(),
		logger:     logger,
		now:        time.Now,
	}
}

func (srv *reactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reactionService) React(ctx context.Context, userID string, input usecase.ReactInput) (*usecase.ReactOutput, error) {
	reactionType := entity.ReactionType(input.Type)
	if !reactionType.IsValid() {
		return nil, domainerrors.ErrInvalidReactionType
	}

	now := srv.now().UTC()
	reaction := &entity.Reaction{
		UserID:    userID,
		CheckInID: input.CheckInID,
		Type:      reactionType,
		Date:      entity.CivilDate(now, srv.location),
		CreatedAt: now,
	}

	var target *entity.CheckIn
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkIn, err := repoFactory.CheckInRepo().FindByID(ctx, input.CheckInID)
		if err != nil {
			if errors.Is(err, repository.ErrCheckInNotFound) {
				return domainerrors.ErrCheckInNotFound
			}

			return errors.Wrap(err, "failed to find check-in")
		}
		if checkIn.UserID == userID {
			return domainerrors.ErrCannotReactToOwnCheckIn
		}

		if err := repoFactory.ReactionRepo().Create(ctx, reaction); err != nil {
			if errors.Is(err, repository.ErrReactionAlreadyExists) {
				return domainerrors.ErrReactionAlreadyGiven
			}

			return errors.Wrap(err, "failed to create reaction")
		}
		target = checkIn

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := srv.boardCache.Invalidate(ctx, target.Date); err != nil {
		srv.log(ctx).Warn("Failed to invalidate leaderboard cache", slog.Any("error", err))
	}

	srv.log(ctx).Info("Reaction recorded",
		slog.String("user_id", userID),
		slog.Int64("checkin_id", input.CheckInID),
		slog.String("type", input.Type),
	)

	return &usecase.ReactOutput{
		ReactionID: reaction.ID,
		CheckInID:  reaction.CheckInID,
		Type:       string(reaction.Type),
		Date:       entity.FormatDate(reaction.Date),
	}, nil
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"
	"checkin/internal/usecase"

	"github.com/pkg/errors"
)

// leaderboardService implements the LeaderboardUsecase interface.
type leaderboardService struct {
	checkInRepo  repository.CheckInRepository
	reactionRepo repository.ReactionRepository
	boardCache   service.LeaderboardCache
	location     *time.Location
	historyDays  int
	maxDays      int
	logger       *slog.Logger
	now          func() time.Time
}

// NewLeaderboardService is the constructor for leaderboardService.
func NewLeaderboardService(
	checkInRepo repository.CheckInRepository,
	reactionRepo repository.ReactionRepository,
	boardCache service.LeaderboardCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LeaderboardUsecase {
	historyDays, maxDays := 30, 90
	if cfg.Leaderboard != nil {
		historyDays = cfg.Leaderboard.HistoryDays
		maxDays = cfg.Leaderboard.MaxHistoryDays
	}

	return &leaderboardService{
		checkInRepo:  checkInRepo,
		reactionRepo: reactionRepo,
		boardCache:   boardCache,
		location:     cfg.Location(),
		historyDays:  historyDays,
		maxDays:      maxDays,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *leaderboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *leaderboardService) Today(ctx context.Context) (*usecase.DailyLeaderboardOutput, error) {
	return srv.Daily(ctx, entity.CivilDate(srv.now(), srv.location))
}

// Daily serves the cached board when present and rebuilds it otherwise.
// Cache failures degrade to a direct read.
func (srv *leaderboardService) Daily(ctx context.Context, date time.Time) (*usecase.DailyLeaderboardOutput, error) {
	date = entity.CivilDate(date, time.UTC)

	board, hit, err := srv.boardCache.Get(ctx, date)
	if err != nil {
		srv.log(ctx).Warn("Leaderboard cache read failed", slog.Any("error", err))
	}
	if hit {
		return toDailyOutput(board), nil
	}

	generation, genErr := srv.boardCache.Generation(ctx, date)
	if genErr != nil {
		srv.log(ctx).Warn("Leaderboard cache generation read failed", slog.Any("error", genErr))
	}

	board, err = srv.build(ctx, date)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		if _, err := srv.boardCache.Set(ctx, board, generation); err != nil {
			srv.log(ctx).Warn("Leaderboard cache write failed", slog.Any("error", err))
		}
	}

	return toDailyOutput(board), nil
}

// Refresh rebuilds the board for date and caches it. A board that went stale
// while it was being built is dropped; the next read rebuilds it.
func (srv *leaderboardService) Refresh(ctx context.Context, date time.Time) error {
	date = entity.CivilDate(date, time.UTC)

	generation, err := srv.boardCache.Generation(ctx, date)
	if err != nil {
		return errors.Wrap(err, "failed to read leaderboard generation")
	}

	board, err := srv.build(ctx, date)
	if err != nil {
		return err
	}

	stored, err := srv.boardCache.Set(ctx, board, generation)
	if err != nil {
		return errors.Wrap(err, "failed to store refreshed leaderboard")
	}

	srv.log(ctx).Debug("Leaderboard refreshed",
		slog.String("date", entity.FormatDate(board.Date)),
		slog.Int("entries", len(board.Entries)),
		slog.Bool("stored", stored),
	)

	return nil
}

// History reads distinct dates first and then every row for them in one query.
func (srv *leaderboardService) History(ctx context.Context, days int) (*usecase.HistoryOutput, error) {
	limit := clampDays(days, srv.historyDays, srv.maxDays)

	dates, err := srv.checkInRepo.ListRecentDates(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list check-in dates")
	}

	output := &usecase.HistoryOutput{History: []usecase.HistoryDay{}}
	if len(dates) == 0 {
		return output, nil
	}

	entries, err := srv.checkInRepo.ListEntriesByDates(ctx, dates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list history entries")
	}

	for _, board := range groupByDate(dates, entries) {
		day := usecase.HistoryDay{
			Date:    entity.FormatDate(board.Date),
			Entries: make([]usecase.HistoryEntry, 0, len(board.Entries)),
		}
		for _, e := range board.Entries {
			day.Entries = append(day.Entries, usecase.HistoryEntry{
				Rank:        e.Rank,
				Name:        e.Name,
				Picture:     e.Picture,
				CheckInTime: e.CheckInTime,
			})
		}
		output.History = append(output.History, day)
	}

	return output, nil
}

func (srv *leaderboardService) build(ctx context.Context, date time.Time) (*entity.Leaderboard, error) {
	entries, err := srv.checkInRepo.ListEntriesByDate(ctx, date, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list check-ins")
	}

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.CheckInID
	}

	counts, err := srv.reactionRepo.CountByCheckInIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reactions")
	}

	return &entity.Leaderboard{Date: date, Entries: rankEntries(entries, counts)}, nil
}

func toDailyOutput(board *entity.Leaderboard) *usecase.DailyLeaderboardOutput {
	output := &usecase.DailyLeaderboardOutput{
		Date:        entity.FormatDate(board.Date),
		Leaderboard: make([]usecase.LeaderboardEntry, 0, len(board.Entries)),
	}
	for _, e := range board.Entries {
		output.Leaderboard = append(output.Leaderboard, usecase.LeaderboardEntry{
			Rank:        e.Rank,
			CheckInID:   e.CheckInID,
			Name:        e.Name,
			Picture:     e.Picture,
			CheckInTime: e.CheckInTime,
			Photo:       e.Photo,
			Likes:       e.Likes,
			Dislikes:    e.Dislikes,
		})
	}

	return output
}

package cache

import (
	"context"
	"log/slog"
	"time"

	"checkin/config"
	"checkin/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type StoreParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
}

func NewTokenStore(params StoreParams) service.TokenStore {
	if params.Client != nil {
		return NewRedisTokenStore(params.Client, params.Config.Session.TokenTTL)
	}

	return NewMemoryTokenStore(params.Config.Session.TokenTTL)
}

func NewStateStore(params StoreParams) service.StateStore {
	if params.Client != nil {
		return NewRedisStateStore(params.Client)
	}

	return NewMemoryStateStore()
}

func NewSessionRevocationStore(params StoreParams) service.SessionRevocationStore {
	if params.Client != nil {
		return NewRedisSessionRevocationStore(params.Client)
	}

	return NewMemorySessionRevocationStore()
}

func NewLeaderboardCache(params StoreParams) service.LeaderboardCache {
	if params.Client != nil {
		return NewRedisLeaderboardCache(params.Client, params.Config.Leaderboard.CacheTTL)
	}

	return NewMemoryLeaderboardCache(params.Config.Leaderboard.CacheTTL)
}

type SweeperParams struct {
	fx.In
	fx.Lifecycle

	Store  service.TokenStore
	Config *config.Config
	Logger *slog.Logger
}

// RegisterTokenSweeper removes expired bearer tokens every session.sweepInterval
// for as long as the application runs.
func RegisterTokenSweeper(params SweeperParams) {
	sweepCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweepTokens(sweepCtx, params.Store, params.Config.Session.SweepInterval, params.Logger)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})
}

func sweepTokens(ctx context.Context, store service.TokenStore, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := store.RevokeExpired(ctx)
			if err != nil {
				logger.WarnContext(ctx, "Session sweep failed", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				logger.InfoContext(ctx, "Expired sessions removed", slog.Int("count", removed))
			}
		}
	}
}

// Module provides the Redis client and every store built on it.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewTokenStore,
		NewStateStore,
		NewSessionRevocationStore,
		NewLeaderboardCache,
	),
)

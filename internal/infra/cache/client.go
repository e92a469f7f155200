// Package cache holds the Redis-backed stores for sessions, OAuth state and
// leaderboards, together with in-memory fallbacks for single-instance runs.
package cache

import (
	"context"
	"log/slog"

	"checkin/config"
	"checkin/internal/domain/lifecycle"
	"checkin/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient connects to Redis when redis.url or redis.addr is configured.
// It returns a nil client otherwise and callers fall back to memory stores.
func NewClient(params ClientParams) (*redis.Client, error) {
	opts, err := clientOptions(params.Config.Redis)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		params.Logger.Info("Redis not configured, using in-memory stores")

		return nil, nil //nolint:nilnil
	}

	client := redis.NewClient(opts)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", opts.Addr), slog.Int("db", opts.DB))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func clientOptions(cfg *config.RedisConfig) (*redis.Options, error) {
	if cfg == nil || (cfg.URL == "" && cfg.Addr == "") {
		return nil, nil //nolint:nilnil
	}

	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse redis url")
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	return opts, nil
}

// Command migrate creates or updates the database schema and exits.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"checkin/config"
	logs "checkin/internal/infra/log"
	"checkin/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "Upper bound for the whole migration")
	flag.Parse()

	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start migration", slog.Any("error", err))
		os.Exit(1)
	}

	migrateErr := postgres.Migrate(ctx, db)
	if migrateErr != nil {
		logger.Error("Migration failed", slog.Any("error", migrateErr))
	} else {
		logger.Info("Migration completed")
	}

	if err := app.Stop(ctx); err != nil {
		logger.Warn("Failed to stop cleanly", slog.Any("error", err))
	}

	if migrateErr != nil {
		os.Exit(1)
	}
}

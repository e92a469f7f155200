package pubsub

import (
	"context"
	"log/slog"
	"sync/atomic"

	"checkin/config"
	"checkin/internal/domain/constants"
	"checkin/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disabledPublisher stands in when pubsub.provider is empty. Check-ins still
// succeed; boards are then rebuilt on read instead of by the worker.
type disabledPublisher struct {
	logger  *slog.Logger
	skipped atomic.Int64
}

func (p *disabledPublisher) PublishCheckInEvent(ctx context.Context, event *service.CheckInEvent) error {
	skipped := p.skipped.Add(1)
	p.logger.DebugContext(ctx, "Check-in event not published, no provider configured",
		slog.String("event_id", event.EventID),
		slog.Int64("checkin_id", event.CheckInID),
		slog.String("date", event.Date),
		slog.Int64("skipped_total", skipped),
	)

	return nil
}

func (p *disabledPublisher) Close() error {
	if skipped := p.skipped.Load(); skipped > 0 {
		p.logger.Info("Check-in events skipped while publishing was disabled", slog.Int64("count", skipped))
	}

	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the check-in event transport from pubsub.provider
// and closes it when the application stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := openPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Check-in events disabled, leaderboards refresh on read")

		return &disabledPublisher{logger: logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		logger.Info("Check-in events pushed to local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	default:
		logger.Info("Check-in events published to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

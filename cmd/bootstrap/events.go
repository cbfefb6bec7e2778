package bootstrap

import (
	"context"
	"log/slog"

	"massfit-bot/internal/infra/events"
	"massfit-bot/internal/pkg/config"
	"massfit-bot/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when no broker is configured
// or reachable; order events are best-effort.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if cfg.Events.AMQPURL == "" {
		return events.NopPublisher{}
	}

	pub, err := events.NewAMQPPublisher(cfg.Events)
	if err != nil {
		slog.Warn("event bus unavailable, order events disabled", "error", err.Error())
		return events.NopPublisher{}
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

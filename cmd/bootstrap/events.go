package bootstrap

import (
	"context"
	"log/slog"

	"foodshare/internal/infra/events"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher drops events when no brokers are configured.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if !cfg.Events.Enabled() {
		return shared.NopEventPublisher{}
	}

	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Events, logger), cfg.Events.WriteTimeout)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

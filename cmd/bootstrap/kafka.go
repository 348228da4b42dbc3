package bootstrap

import (
	"context"

	"carwash-booking/internal/infra/notify"
	"carwash-booking/internal/pkg/config"
	"carwash-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		fx.Annotate(
			NewKafkaPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewKafkaPublisher(lc fx.Lifecycle, cfg config.Config) *notify.KafkaPublisher {
	publisher, cleanup := notify.NewKafkaPublisher(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher
}

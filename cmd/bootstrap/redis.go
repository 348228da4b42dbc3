package bootstrap

import (
	"context"

	"carwash-booking/internal/infra/cache"
	"carwash-booking/internal/pkg/config"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
			fx.As(new(commands.SlotCacheInvalidator)),
		),
	),
)

func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config) *cache.AvailabilityCache {
	availabilityCache, cleanup := cache.NewAvailabilityCache(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return availabilityCache
}

package components

import (
	"time"

	"carwash-booking/internal/pkg/clock"
	"carwash-booking/internal/pkg/config"
	"carwash-booking/internal/usecase"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewLocation,
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.DB.TimeZone)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCarWashUseCase,
		commands.NewServiceUseCase,
		commands.NewBookingUseCase,
		commands.NewReviewUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCarWashQueries,
		queries.NewServiceQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

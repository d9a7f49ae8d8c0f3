package components

import (
	"staybook/internal/domain/booking"
	"staybook/internal/pkg/clock"
	"staybook/internal/usecase"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

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
	fx.Annotate(
		booking.NewStandardPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	fx.Annotate(
		booking.NewStandardRefundPolicy,
		fx.As(new(booking.RefundPolicy)),
	),
	booking.NewFactory,
	commands.NewLifecycleNotifier,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

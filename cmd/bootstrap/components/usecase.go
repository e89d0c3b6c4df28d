package components

import (
	"voltshare-booking/internal/domain/booking"
	"voltshare-booking/internal/pkg/clock"
	"voltshare-booking/internal/pkg/config"
	"voltshare-booking/internal/usecase"
	"voltshare-booking/internal/usecase/commands"
	"voltshare-booking/internal/usecase/queries"

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
	func(cfg config.Config) booking.PriceCalculator {
		return booking.NewTaxedHourlyCalculator(cfg.Booking.TaxCents)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStationQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

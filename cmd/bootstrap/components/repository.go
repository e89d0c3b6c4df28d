package components

import (
	"voltshare-booking/internal/infra/payment"
	repo_impl "voltshare-booking/internal/infra/repository"
	"voltshare-booking/internal/infra/staging"
	"voltshare-booking/internal/pkg/config"
	"voltshare-booking/internal/usecase/commands"
	"voltshare-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		fx.Annotate(
			repo_impl.NewStationRepository,
			fx.As(new(commands.StationRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			repo_impl.NewStationReadRepository,
			fx.As(new(queries.StationReadStore)),
		),
		fx.Annotate(
			repo_impl.NewReservationReadRepository,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Payment and staging infrastructure
		NewStripeGateway,
		fx.Annotate(
			staging.NewRedisStore,
			fx.As(new(commands.TransientStore)),
		),
		fx.Annotate(
			staging.NewRedisCacheRefresher,
			fx.As(new(commands.CacheRefresher)),
		),
	),
)

func NewStripeGateway(cfg config.Config) commands.PaymentGateway {
	return payment.NewStripeGateway(cfg.Stripe)
}

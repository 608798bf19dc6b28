package components

import (
	"bulk-cleanup/internal/infra/kvstore"
	"bulk-cleanup/internal/infra/repository"
	"bulk-cleanup/internal/infra/statestore"
	"bulk-cleanup/internal/infra/uow"
	"bulk-cleanup/internal/pkg/config"
	"bulk-cleanup/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	repositoryModule,
	statestoreModule,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Users
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserSource)),
		),
		// Orders
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(shared.OrderSource)),
		),
		// Coupons
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(shared.CouponSource)),
		),
	),
)

var statestoreModule = fx.Module("persistence/statestore",
	fx.Provide(
		// Scan state
		fx.Annotate(
			NewScanStateRepository,
			fx.As(new(shared.ScanStateStore)),
		),
		// Pending IDs
		fx.Annotate(
			NewPendingIDRepository,
			fx.As(new(shared.PendingIDStore)),
		),
		// Settings
		fx.Annotate(
			NewSettingsRepository,
			fx.As(new(shared.CriteriaStore)),
		),
	),
)

func NewScanStateRepository(store kvstore.Store, cfg config.Config) *statestore.ScanStateRepository {
	return statestore.NewScanStateRepository(store, cfg.Cleanup.StateTTL)
}

func NewPendingIDRepository(store kvstore.Store, cfg config.Config) *statestore.PendingIDRepository {
	return statestore.NewPendingIDRepository(store, cfg.Cleanup.StateTTL)
}

func NewSettingsRepository(store kvstore.Store, cfg config.Config) (*statestore.SettingsRepository, error) {
	seed, err := statestore.LoadSeed(cfg.Cleanup.SettingsFile)
	if err != nil {
		return nil, err
	}
	return statestore.NewSettingsRepository(store, seed), nil
}


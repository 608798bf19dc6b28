package components

import (
	"bulk-cleanup/internal/infra/metrics"
	"bulk-cleanup/internal/pkg/clock"
	"bulk-cleanup/internal/pkg/config"
	"bulk-cleanup/internal/usecase"
	"bulk-cleanup/internal/usecase/commands"
	"bulk-cleanup/internal/usecase/queries"
	"bulk-cleanup/internal/usecase/shared"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
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
		metrics.New,
		fx.As(fx.Self()),
		fx.As(new(shared.CleanupMetrics)),
	),
	fx.Annotate(
		NewDeleteThrottle,
		fx.As(new(shared.Throttle)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewScanDeps,
		commands.NewScanCommands,
		commands.NewDeletionCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCleanupQueries,
		queries.NewSettingsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewDeleteThrottle paces per-record deletes; a zero rate means unthrottled.
func NewDeleteThrottle(cfg config.Config) *rate.Limiter {
	if cfg.Cleanup.DeleteRate <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(cfg.Cleanup.DeleteRate), 1)
}

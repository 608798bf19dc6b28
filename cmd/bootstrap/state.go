package bootstrap

import (
	"context"
	"log/slog"

	"bulk-cleanup/internal/infra/kvstore"
	"bulk-cleanup/internal/pkg/config"

	"go.uber.org/fx"
)

var StateModule = fx.Module("state",
	fx.Provide(
		fx.Annotate(
			NewStateStore,
			fx.As(new(kvstore.Store)),
		),
	),
)

func NewStateStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*kvstore.BadgerStore, error) {
	store, err := kvstore.OpenFromConfig(cfg.Cleanup, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Cleanup.StateDir == "" {
		logger.Warn("CLEANUP_STATE_DIR is empty; scan state will not survive a restart")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

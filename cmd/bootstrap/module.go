package bootstrap

import (
	"bulk-cleanup/cmd/bootstrap/components"
	"bulk-cleanup/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule reads the environment once; tests supply config.NewTestConfig instead.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module wires the whole cleanup service in dependency order.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	StateModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

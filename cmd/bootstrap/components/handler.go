package components

import (
	"bulk-cleanup/internal/handler"
	"bulk-cleanup/internal/handler/api"
	"bulk-cleanup/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCleanupHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
		func(cleanup *api.CleanupHandler, settings *api.SettingsHandler) handler.Handlers {
			return handler.Handlers{Cleanup: cleanup, Settings: settings}
		},
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"seva-console/internal/handler"
	"seva-console/internal/handler/api"
	"seva-console/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookSevaHandler,
		api.NewCallingSevaHandler,
		api.NewExpenseHandler,
		api.NewGeneralHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"mercado-tracker/internal/handler"
	"mercado-tracker/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTrackerHandler,
		api.NewProductHandler,
	),
	fx.Invoke(handler.NewRouter),
)

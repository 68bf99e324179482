package components

import (
	"mercado-tracker/internal/pkg/clock"
	"mercado-tracker/internal/usecase/commands"
	"mercado-tracker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTrackerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTrackerQueries,
		queries.NewProductQueries,
	),
)

package bootstrap

import (
	"mercado-tracker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	components.InfraModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)

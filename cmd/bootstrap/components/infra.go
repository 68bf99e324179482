package components

import (
	"log/slog"

	"mercado-tracker/internal/infra/mercadolivre"
	"mercado-tracker/internal/infra/notify"
	"mercado-tracker/internal/pkg/config"
	"mercado-tracker/internal/usecase/commands"
	"mercado-tracker/internal/worker"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			NewSearchClient,
			fx.As(new(worker.SearchClient)),
		),
		fx.Annotate(
			NewStateResolver,
			fx.As(new(worker.RegionResolver)),
		),
		fx.Annotate(
			notify.NewWhatsAppSimulator,
			fx.As(new(commands.Notifier)),
			fx.As(new(worker.Notifier)),
		),
	),
)

func NewSearchClient(cfg config.Config, logger *slog.Logger) *mercadolivre.Client {
	return mercadolivre.NewClient(cfg.Marketplace, logger)
}

func NewStateResolver(cfg config.Config, logger *slog.Logger) *mercadolivre.StateResolver {
	return mercadolivre.NewStateResolver(cfg.Marketplace, logger)
}

package components

import (
	"context"
	"log/slog"

	"mercado-tracker/internal/pkg/clock"
	"mercado-tracker/internal/pkg/config"
	"mercado-tracker/internal/usecase/commands"
	"mercado-tracker/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewPoller,
		func(p *worker.Poller) commands.TrackerRunner { return p },
	),
	fx.Invoke(registerPoller),
)

func NewPoller(
	cfg config.Config,
	store worker.Store,
	search worker.SearchClient,
	regions worker.RegionResolver,
	notifier worker.Notifier,
	clk clock.Clock,
	logger *slog.Logger,
) *worker.Poller {
	return worker.New(cfg.Poll.Interval, store, search, regions, notifier, clk, logger)
}

// registerPoller ties the recurring cycle to the application lifecycle: the
// timer starts with the process and is stopped (and drained) on shutdown.
func registerPoller(lc fx.Lifecycle, p *worker.Poller) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			p.Stop()
			return nil
		},
	})
}

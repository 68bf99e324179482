package bootstrap

import (
	"context"
	"log/slog"

	"mercado-tracker/internal/infra/snapshot"
	"mercado-tracker/internal/infra/store"
	"mercado-tracker/internal/pkg/config"
	"mercado-tracker/internal/usecase/commands"
	"mercado-tracker/internal/usecase/queries"
	"mercado-tracker/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSnapshot,
		fx.Annotate(
			NewStore,
			fx.As(new(commands.TrackerStore)),
			fx.As(new(queries.TrackerReadStore)),
			fx.As(new(queries.ProductReadStore)),
			fx.As(new(worker.Store)),
		),
	),
)

// NewSnapshot selects the durable snapshot backend. The file driver needs no
// external services; the postgres driver opens a pool that is closed on
// shutdown.
func NewSnapshot(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (snapshot.Snapshot, error) {
	switch cfg.Snapshot.Driver {
	case "postgres":
		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.DB.BuildDSN())
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				pool.Close()
				return nil
			},
		})
		logger.Info("snapshot backend: postgres", "db", cfg.DB.DBName)
		return snapshot.NewPostgres(ctx, pool)
	default:
		logger.Info("snapshot backend: file", "path", cfg.Snapshot.Path)
		return snapshot.NewFile(cfg.Snapshot.Path), nil
	}
}

// NewStore builds the in-memory store and restores state before anything can
// serve requests. Load fails soft, so startup never aborts on a bad snapshot.
func NewStore(snap snapshot.Snapshot, logger *slog.Logger) *store.Store {
	s := store.New(snap, logger)
	s.Load(context.Background())
	return s
}

package snapshot

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mercado-tracker/internal/pkg/errs"
)

// Postgres keeps the snapshot document in a single jsonb row. This is not a
// relational model on purpose: the store contract is load-all/save-all, and a
// one-row upsert keeps both backends byte-compatible.
type Postgres struct {
	pool *pgxpool.Pool
}

const snapshotTableDDL = `
CREATE TABLE IF NOT EXISTS state_snapshot (
	id         int PRIMARY KEY,
	document   jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*Postgres, error) {
	if _, err := pool.Exec(ctx, snapshotTableDDL); err != nil {
		return nil, errs.Wrap(err, "failed to ensure snapshot table")
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Load(ctx context.Context) (*Data, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx, `SELECT document FROM state_snapshot WHERE id = 1`).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to read snapshot row")
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errs.Wrap(err, "failed to decode snapshot row")
	}
	return &data, nil
}

func (p *Postgres) Save(ctx context.Context, data *Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return errs.Wrap(err, "failed to encode snapshot")
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO state_snapshot (id, document, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`,
		raw)
	if err != nil {
		return errs.Wrap(err, "failed to upsert snapshot row")
	}
	return nil
}

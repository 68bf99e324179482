// Package snapshot persists the full engine state as a single document.
//
// The store follows a crash-only durability model: the snapshot is written
// synchronously after every mutation and read back once on startup. Both
// backends round-trip the same JSON document, so deployments can move between
// the file and Postgres drivers without migration.
package snapshot

import (
	"context"
	"errors"

	"mercado-tracker/internal/domain/product"
	"mercado-tracker/internal/domain/tracker"
)

// ErrNotFound reports that no snapshot has been written yet. The store treats
// it as a first-run signal, not a failure.
var ErrNotFound = errors.New("snapshot not found")

// Data is the durable document. Trackers keep their confirmation codes here:
// the snapshot is trusted storage; the HTTP layer strips codes on the way out.
type Data struct {
	Trackers []tracker.Tracker `json:"trackers"`
	Products []product.Product `json:"products"`
}

type Snapshot interface {
	Load(ctx context.Context) (*Data, error)
	Save(ctx context.Context, data *Data) error
}

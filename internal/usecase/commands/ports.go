package commands

import (
	"context"

	"github.com/google/uuid"

	"mercado-tracker/internal/domain/tracker"
)

// TrackerStore is the write-side slice of the state store used by commands.
type TrackerStore interface {
	InsertTracker(ctx context.Context, t tracker.Tracker)
	UpdateTracker(ctx context.Context, id uuid.UUID, apply func(*tracker.Tracker) error) (tracker.Tracker, error)
	DeleteTracker(ctx context.Context, id uuid.UUID) error
}

// Notifier delivers lifecycle messages (confirmation codes) to the tracker's
// contact address. Fire-and-forget; see internal/infra/notify.
type Notifier interface {
	Notify(ctx context.Context, address, message string)
}

// TrackerRunner executes the single-tracker poll pipeline. Confirm uses it to
// give the user first results immediately instead of waiting for the next
// scheduled tick; it funnels through the same ingest path as the scheduler.
type TrackerRunner interface {
	RunTracker(ctx context.Context, t tracker.Tracker)
}

package queries

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"mercado-tracker/internal/domain/tracker"
)

// TrackerView is the read model served to clients. It has no confirmation
// code field at all, so a pending code can never leak through serialization.
type TrackerView struct {
	ID            uuid.UUID
	SearchTerm    string
	MinPrice      int
	MaxPrice      int
	Condition     string
	Location      string
	NotifyAddress string
	CreatedAt     time.Time
	Status        string
}

type TrackerReadStore interface {
	Trackers() []tracker.Tracker
}

type TrackerQueries interface {
	List(ctx context.Context) ([]TrackerView, error)
}

type trackerQueriesImpl struct {
	store TrackerReadStore
}

func NewTrackerQueries(store TrackerReadStore) TrackerQueries {
	return &trackerQueriesImpl{store: store}
}

func (q *trackerQueriesImpl) List(_ context.Context) ([]TrackerView, error) {
	trackers := q.store.Trackers()

	views := make([]TrackerView, len(trackers))
	for i, t := range trackers {
		views[i] = TrackerView{
			ID:            t.ID,
			SearchTerm:    t.SearchTerm,
			MinPrice:      t.MinPrice,
			MaxPrice:      t.MaxPrice,
			Condition:     string(t.Condition),
			Location:      t.Location,
			NotifyAddress: t.NotifyAddress,
			CreatedAt:     t.CreatedAt,
			Status:        string(t.Status),
		}
	}

	// The store keeps insertion order; sort anyway so the newest-first
	// contract survives snapshot restores from other writers.
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

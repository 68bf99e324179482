// Package store owns the in-memory tracker and product collections.
//
// A single mutex serializes every read-modify-write sequence: synchronous
// request handling and the poll worker both go through it, so a tracker
// deleted mid-cycle or two concurrent polls of the same listing can never
// corrupt the collections. Marketplace I/O happens outside the lock: callers
// take value snapshots, do their slow work, then come back to append.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"mercado-tracker/internal/domain/product"
	"mercado-tracker/internal/domain/tracker"
	"mercado-tracker/internal/infra/snapshot"
	"mercado-tracker/internal/pkg/errs"
)

type Store struct {
	mu       sync.Mutex
	trackers []tracker.Tracker // newest first
	products []product.Product // newest first
	known    map[string]struct{}
	snap     snapshot.Snapshot
	logger   *slog.Logger
}

func New(snap snapshot.Snapshot, logger *slog.Logger) *Store {
	return &Store{
		known:  make(map[string]struct{}),
		snap:   snap,
		logger: logger,
	}
}

// Load restores state from the snapshot. It fails soft: a missing snapshot
// starts an empty dataset, a corrupt one is logged and discarded. The process
// never refuses to start over durable-medium trouble.
func (s *Store) Load(ctx context.Context) {
	data, err := s.snap.Load(ctx)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			s.logger.Info("no snapshot found, starting with an empty dataset")
		} else {
			s.logger.Error("snapshot load failed, starting with an empty dataset", "error", err)
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackers = data.Trackers
	s.products = data.Products
	s.known = make(map[string]struct{}, len(data.Products))
	for _, p := range data.Products {
		s.known[p.ID] = struct{}{}
	}
	s.logger.Info("snapshot loaded", "trackers", len(s.trackers), "products", len(s.products))
}

// InsertTracker prepends a newly created tracker and persists.
func (s *Store) InsertTracker(ctx context.Context, t tracker.Tracker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackers = append([]tracker.Tracker{t}, s.trackers...)
	s.persistLocked(ctx)
}

// Trackers returns a copy of all trackers, newest first.
func (s *Store) Trackers() []tracker.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]tracker.Tracker, len(s.trackers))
	copy(out, s.trackers)
	return out
}

// ActiveTrackers returns a copy of the trackers currently eligible for
// polling. The poll cycle works from this snapshot so the store lock is not
// held across marketplace calls.
func (s *Store) ActiveTrackers() []tracker.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []tracker.Tracker
	for _, t := range s.trackers {
		if t.IsActive() {
			out = append(out, t)
		}
	}
	return out
}

// UpdateTracker applies a state transition to the tracker with the given id
// and persists on success. When apply returns an error the tracker is left
// untouched and nothing is saved.
func (s *Store) UpdateTracker(ctx context.Context, id uuid.UUID, apply func(*tracker.Tracker) error) (tracker.Tracker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trackers {
		if s.trackers[i].ID != id {
			continue
		}
		if err := apply(&s.trackers[i]); err != nil {
			return tracker.Tracker{}, err
		}
		s.persistLocked(ctx)
		return s.trackers[i], nil
	}
	return tracker.Tracker{}, errs.ErrTrackerNotFound
}

// DeleteTracker removes the tracker regardless of status. Deleting an unknown
// id (including a second delete of the same id) reports not-found.
func (s *Store) DeleteTracker(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trackers {
		if s.trackers[i].ID != id {
			continue
		}
		s.trackers = append(s.trackers[:i], s.trackers[i+1:]...)
		s.persistLocked(ctx)
		return nil
	}
	return errs.ErrTrackerNotFound
}

// Products returns a copy of the product history, newest first.
func (s *Store) Products() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out
}

// AppendProducts ingests candidate products, dropping every id already in the
// history, and returns the ones actually appended. The membership test runs
// under the store lock, so the scheduler cycle and a confirm-triggered run can
// never double-insert the same listing. Re-running with an identical batch is
// a no-op.
func (s *Store) AppendProducts(ctx context.Context, candidates []product.Product) []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var added []product.Product
	for _, p := range candidates {
		if _, seen := s.known[p.ID]; seen {
			continue
		}
		s.known[p.ID] = struct{}{}
		added = append(added, p)
	}
	if len(added) == 0 {
		return nil
	}

	// Prepend the batch in marketplace order: history stays newest-first.
	s.products = append(append([]product.Product{}, added...), s.products...)
	s.persistLocked(ctx)
	return added
}

// persistLocked writes the snapshot while holding the mutex. Failures are
// logged and swallowed; the in-memory state stays authoritative for the
// remainder of the process lifetime.
func (s *Store) persistLocked(ctx context.Context) {
	data := &snapshot.Data{Trackers: s.trackers, Products: s.products}
	if err := s.snap.Save(ctx, data); err != nil {
		s.logger.Error("snapshot save failed, continuing with in-memory state", "error", err)
	}
}

// Package worker drives the recurring marketplace poll.
//
// Each cycle snapshots the active trackers, then runs resolve → search →
// ingest → persist → notify per tracker. Marketplace I/O never holds the
// store lock, and one tracker's failure never aborts the cycle for the rest.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mercado-tracker/internal/domain/product"
	"mercado-tracker/internal/domain/tracker"
	"mercado-tracker/internal/infra/mercadolivre"
	"mercado-tracker/internal/pkg/clock"
)

// Store is the slice of the state store the poller needs: a snapshot of
// pollable trackers and the deduplicating append.
type Store interface {
	ActiveTrackers() []tracker.Tracker
	AppendProducts(ctx context.Context, candidates []product.Product) []product.Product
}

// SearchClient runs one marketplace search. Implementations return an empty
// slice on failure; the poller treats empty-on-error and empty-on-no-results
// identically.
type SearchClient interface {
	Search(ctx context.Context, q mercadolivre.SearchQuery) []mercadolivre.Listing
}

// RegionResolver maps a state code to the marketplace region id, "" when the
// code cannot be resolved (search then proceeds nationwide).
type RegionResolver interface {
	Resolve(ctx context.Context, code string) string
}

type Notifier interface {
	Notify(ctx context.Context, address, message string)
}

type Poller struct {
	interval time.Duration
	store    Store
	search   SearchClient
	regions  RegionResolver
	notifier Notifier
	clock    clock.Clock
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func New(interval time.Duration, store Store, search SearchClient, regions RegionResolver, notifier Notifier, clk clock.Clock, logger *slog.Logger) *Poller {
	return &Poller{
		interval: interval,
		store:    store,
		search:   search,
		regions:  regions,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Start launches the recurring cycle in a background goroutine. The poller
// owns its lifecycle: Stop cancels the loop and waits for it to exit.
func (p *Poller) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.Info("poll worker started", "interval", p.interval)
		for {
			select {
			case <-ctx.Done():
				p.logger.Info("poll worker stopped")
				return
			case <-ticker.C:
				p.RunCycle(ctx)
			}
		}
	}()
}

// Stop cancels the loop. In-flight tracker pipelines are abandoned at their
// next boundary call; ingest idempotence makes a re-run after restart safe.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}

// RunCycle processes every active tracker once. Zero active trackers means
// zero outbound calls.
func (p *Poller) RunCycle(ctx context.Context) {
	active := p.store.ActiveTrackers()
	if len(active) == 0 {
		return
	}

	p.logger.Debug("poll cycle started", "active_trackers", len(active))
	for _, t := range active {
		if ctx.Err() != nil {
			return
		}
		p.runIsolated(ctx, t)
	}
}

// RunTracker runs the pipeline for a single tracker. Confirm calls this
// directly so a freshly activated tracker gets results immediately; both call
// sites funnel through the same ingest path.
func (p *Poller) RunTracker(ctx context.Context, t tracker.Tracker) {
	q := mercadolivre.SearchQuery{
		Term:      t.SearchTerm,
		MinPrice:  t.MinPrice,
		MaxPrice:  t.MaxPrice,
		Condition: t.Condition,
	}
	if t.Location != "" {
		q.StateID = p.regions.Resolve(ctx, t.Location)
	}

	listings := p.search.Search(ctx, q)
	if len(listings) == 0 {
		return
	}

	added := p.store.AppendProducts(ctx, ingest(listings, p.clock.Now()))
	if len(added) == 0 {
		return
	}

	p.logger.Info("new products found", "term", t.SearchTerm, "count", len(added))
	for _, found := range added {
		p.notifier.Notify(ctx, t.NotifyAddress, formatOfferMessage(t, found))
	}
}

// runIsolated contains a single tracker's failure so the rest of the cycle
// keeps going even if an adapter panics on a malformed response.
func (p *Poller) runIsolated(ctx context.Context, t tracker.Tracker) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("tracker poll panicked, skipping this cycle",
				"tracker_id", t.ID, "term", t.SearchTerm, "panic", r)
		}
	}()
	p.RunTracker(ctx, t)
}

func formatOfferMessage(t tracker.Tracker, found product.Product) string {
	return fmt.Sprintf("New offer for %q: %s - R$ %.2f - %s",
		t.SearchTerm, found.Title, found.Price, found.Link)
}

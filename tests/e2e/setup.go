//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"mercado-tracker/cmd/bootstrap"
	"mercado-tracker/cmd/bootstrap/components"
	"mercado-tracker/internal/handler/middleware"
	"mercado-tracker/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"log/slog"
)

// MarketplaceStub fakes the two upstream endpoints the engine talks to: the
// site search and the classified-locations state directory. Results are set
// per search term so tests can script what each poll discovers.
type MarketplaceStub struct {
	Server *httptest.Server

	mu       sync.Mutex
	results  map[string][]map[string]any
	states   map[string]string
	searches []string
}

func NewMarketplaceStub() *MarketplaceStub {
	stub := &MarketplaceStub{
		results: make(map[string][]map[string]any),
		states:  make(map[string]string),
	}
	stub.Server = httptest.NewServer(http.HandlerFunc(stub.handle))
	return stub
}

func (m *MarketplaceStub) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case strings.HasPrefix(r.URL.Path, "/sites/"):
		term := r.URL.Query().Get("q")
		m.searches = append(m.searches, term)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"results": m.results[term]})
	case strings.HasPrefix(r.URL.Path, "/classified_locations/states/"):
		code := strings.TrimPrefix(r.URL.Path, "/classified_locations/states/")
		id, ok := m.states[code]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": id})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// SetResults scripts the search results for a term. Listing maps use the wire
// field names (id, title, price, permalink, thumbnail).
func (m *MarketplaceStub) SetResults(term string, listings ...map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[term] = listings
}

func (m *MarketplaceStub) SetState(code, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[code] = id
}

func (m *MarketplaceStub) SearchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.searches)
}

func (m *MarketplaceStub) Close() {
	m.Server.Close()
}

func Listing(id, title string, price float64) map[string]any {
	return map[string]any{
		"id":        id,
		"title":     title,
		"price":     price,
		"permalink": "https://produto.example.com/" + id,
		"thumbnail": "http://mlb-s1.example.com/" + id + ".jpg",
	}
}

// setupE2EEnvironment wires the full application around a stubbed marketplace
// and a file snapshot in a per-test temp dir.
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config, *MarketplaceStub, string) {
	gin.SetMode(gin.TestMode)

	marketplace := NewMarketplaceStub()
	t.Cleanup(marketplace.Close)

	snapshotPath := filepath.Join(t.TempDir(), "db.json")

	testConfig := config.NewTestConfig()
	testConfig.Snapshot.Path = snapshotPath
	testConfig.Marketplace.BaseURL = marketplace.Server.URL
	testConfig.Poll.Interval = time.Hour // scheduled ticks stay out of the way; tests drive polls via confirm

	router, cfg, app := buildE2EApp(testConfig)
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return router, cfg, marketplace, snapshotPath
}

func buildE2EApp(testConfig config.Config) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return testConfig }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			func(cfg config.Config) *slog.Logger {
				return middleware.NewLogger(cfg.Log).GetSlogLogger()
			},
		),
		bootstrap.StoreModule,
		components.InfraModule,
		components.UseCaseModule,
		components.WorkerModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}

	return router, cfg, app
}

// SharedSuite is the common base for e2e suites: a fully wired router, the
// marketplace stub behind it and the snapshot path for durability assertions.
type SharedSuite struct {
	suite.Suite
	Router       *gin.Engine
	Config       config.Config
	Marketplace  *MarketplaceStub
	SnapshotPath string
}

func (s *SharedSuite) SetupTest() {
	router, cfg, marketplace, snapshotPath := setupE2EEnvironment(s.T())
	s.Router = router
	s.Config = cfg
	s.Marketplace = marketplace
	s.SnapshotPath = snapshotPath
}

// SetupSubTest rebuilds the whole environment so every s.Run starts from an
// empty snapshot and a clean marketplace stub.
func (s *SharedSuite) SetupSubTest() {
	s.SetupTest()
}

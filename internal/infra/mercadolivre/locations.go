package mercadolivre

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"mercado-tracker/internal/pkg/config"
)

// StateResolver maps a state code (UF) to the marketplace's internal region
// id through the classified-locations directory. State codes are a small,
// stable set, so successful resolutions are cached for the process lifetime.
// Any failure resolves to "" and the search proceeds nationwide.
type StateResolver struct {
	baseURL string
	country string
	http    *http.Client
	logger  *slog.Logger

	mu    sync.Mutex
	cache map[string]string
}

func NewStateResolver(cfg config.MarketplaceConfig, logger *slog.Logger) *StateResolver {
	return &StateResolver{
		baseURL: cfg.BaseURL,
		country: cfg.Country,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		cache:   make(map[string]string),
	}
}

func (r *StateResolver) Resolve(ctx context.Context, code string) string {
	uf := strings.ToUpper(strings.TrimSpace(code))
	if uf == "" {
		return ""
	}

	r.mu.Lock()
	if id, ok := r.cache[uf]; ok {
		r.mu.Unlock()
		return id
	}
	r.mu.Unlock()

	id := r.lookup(ctx, uf)
	if id == "" {
		return ""
	}

	r.mu.Lock()
	r.cache[uf] = id
	r.mu.Unlock()
	return id
}

func (r *StateResolver) lookup(ctx context.Context, uf string) string {
	endpoint := fmt.Sprintf("%s/classified_locations/states/%s-%s", r.baseURL, r.country, uf)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		r.logger.Warn("state lookup request build failed", "state", uf, "error", err)
		return ""
	}

	resp, err := r.http.Do(req)
	if err != nil {
		r.logger.Warn("state lookup failed, searching nationwide", "state", uf, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("state lookup returned non-success status, searching nationwide",
			"state", uf, "status", resp.StatusCode)
		return ""
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		r.logger.Warn("state lookup returned malformed payload, searching nationwide",
			"state", uf, "error", err)
		return ""
	}
	return parsed.ID
}

// Package mercadolivre talks to the Mercado Livre public search API.
//
// Failures deliberately degrade to "no results": a single tracker hitting a
// flaky upstream must never raise past this boundary or block the rest of a
// poll cycle. Every failure path is logged so the degradation stays
// observable.
package mercadolivre

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"mercado-tracker/internal/domain/tracker"
	"mercado-tracker/internal/pkg/config"
)

// Listing is one raw search result, not yet known to be new.
type Listing struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Permalink string  `json:"permalink"`
	Thumbnail string  `json:"thumbnail"`
}

type searchResponse struct {
	Results []Listing `json:"results"`
}

// SearchQuery carries a tracker's criteria with the region already resolved.
type SearchQuery struct {
	Term      string
	MinPrice  int
	MaxPrice  int
	Condition tracker.Condition
	StateID   string
}

type Client struct {
	baseURL string
	siteID  string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.MarketplaceConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		siteID:  cfg.SiteID,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Search runs one query against the site search endpoint. Only meaningful
// fields reach the wire: condition "all" and zero price bounds are omitted
// rather than sent as literal filters. Any failure returns an empty slice.
func (c *Client) Search(ctx context.Context, q SearchQuery) []Listing {
	endpoint := fmt.Sprintf("%s/sites/%s/search?%s", c.baseURL, c.siteID, buildQuery(q))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Warn("marketplace search request build failed", "term", q.Term, "error", err)
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("marketplace search failed", "term", q.Term, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("marketplace search returned non-success status",
			"term", q.Term, "status", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("marketplace search body read failed", "term", q.Term, "error", err)
		return nil
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Warn("marketplace search returned malformed payload", "term", q.Term, "error", err)
		return nil
	}

	c.logger.Debug("marketplace search completed", "term", q.Term, "results", len(parsed.Results))
	return parsed.Results
}

func buildQuery(q SearchQuery) string {
	params := url.Values{}
	params.Set("q", q.Term)

	if q.Condition != "" && q.Condition != tracker.ConditionAll {
		params.Set("condition", string(q.Condition))
	}

	// Bounds are optional on either side: "300-" and "-4000" are valid.
	if q.MinPrice > 0 || q.MaxPrice > 0 {
		minPart, maxPart := "", ""
		if q.MinPrice > 0 {
			minPart = fmt.Sprintf("%d", q.MinPrice)
		}
		if q.MaxPrice > 0 {
			maxPart = fmt.Sprintf("%d", q.MaxPrice)
		}
		params.Set("price", minPart+"-"+maxPart)
	}

	if q.StateID != "" {
		params.Set("state", q.StateID)
	}

	return params.Encode()
}

// ABOUTME: Search service issues one web-search call per query through SerpAPI
// ABOUTME: Failures degrade to zero hits; successful pages are cached per query

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

const (
	// DefaultEndpoint is SerpAPI's JSON search endpoint
	DefaultEndpoint = "https://serpapi.com/search.json"

	// MaxResultCount is the most organic results requested per query
	MaxResultCount = 12

	engineName = "google"
	apiName    = "serpapi"
)

// Options configures the search provider
type Options struct {
	// APIKey is the SerpAPI key; without it every search yields zero hits
	APIKey string

	// Endpoint overrides DefaultEndpoint (tests)
	Endpoint string

	// ResultCount is clamped to [1, MaxResultCount]
	ResultCount int

	// CacheTTL is how long a page of hits is cached; 0 disables caching
	CacheTTL time.Duration
}

// SearchService runs adoption queries against the search provider
type SearchService struct {
	deps interfaces.Dependencies
	opts Options
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, opts Options) *SearchService {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.ResultCount <= 0 || opts.ResultCount > MaxResultCount {
		opts.ResultCount = MaxResultCount
	}
	deps.Logger = interfaces.LoggerOrNop(deps.Logger)
	deps.Metrics = interfaces.MetricsOrNop(deps.Metrics)
	return &SearchService{
		deps: deps,
		opts: opts,
	}
}

// Engine names the engine reported in response metadata
func (s *SearchService) Engine() string {
	return engineName
}

// Configured reports whether an API key is present
func (s *SearchService) Configured() bool {
	return s.opts.APIKey != ""
}

// Search returns the organic results for query. It never fails: upstream
// errors, non-2xx answers and undecodable bodies all yield no hits.
func (s *SearchService) Search(ctx context.Context, query string) []domain.SearchHit {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	if !s.Configured() {
		s.deps.Logger.Warn("Search skipped, no API key configured", map[string]interface{}{
			"query": query,
		})
		return nil
	}

	cacheKey := fmt.Sprintf("search:serp:%s", query)
	if hits, ok := s.fromCache(ctx, cacheKey); ok {
		s.deps.Logger.Debug("Search cache hit", map[string]interface{}{
			"query": query,
			"hits":  len(hits),
		})
		return hits
	}

	if s.deps.HTTPClient == nil {
		s.deps.Logger.Error("Search skipped, HTTP client not configured", nil)
		return nil
	}

	start := time.Now()
	hits, err := s.fetch(ctx, query)
	s.deps.Metrics.ObserveUpstream(apiName, err == nil, time.Since(start))
	if err != nil {
		s.deps.Logger.Warn("Search provider failed, treating as zero hits", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return nil
	}

	s.deps.Logger.Info("Search query completed", map[string]interface{}{
		"query": query,
		"hits":  len(hits),
	})

	if s.cacheEnabled(ctx) && len(hits) > 0 {
		if data, err := json.Marshal(hits); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.opts.CacheTTL)
		}
	}

	return hits
}

func (s *SearchService) cacheEnabled(ctx context.Context) bool {
	return s.deps.Cache != nil && s.opts.CacheTTL > 0 && featureflags.IsEnabled(ctx, featureflags.SearchCache)
}

func (s *SearchService) fromCache(ctx context.Context, key string) ([]domain.SearchHit, bool) {
	if !s.cacheEnabled(ctx) {
		return nil, false
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}
	var hits []domain.SearchHit
	if err := json.Unmarshal(data, &hits); err != nil {
		return nil, false
	}
	return hits, true
}

// serpAPIResponse is the subset of the SerpAPI payload we read
type serpAPIResponse struct {
	OrganicResults []struct {
		Title         string `json:"title"`
		Snippet       string `json:"snippet"`
		Link          string `json:"link"`
		DisplayedLink string `json:"displayed_link"`
		Source        string `json:"source"`
	} `json:"organic_results"`
	Error string `json:"error"`
}

func (s *SearchService) fetch(ctx context.Context, query string) ([]domain.SearchHit, error) {
	params := url.Values{}
	params.Set("engine", engineName)
	params.Set("hl", "pt-br")
	params.Set("gl", "br")
	params.Set("google_domain", "google.com.br")
	params.Set("num", strconv.Itoa(s.opts.ResultCount))
	params.Set("q", query)
	params.Set("api_key", s.opts.APIKey)

	resp, err := s.deps.HTTPClient.Get(ctx, s.opts.Endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode())
	}

	var apiResponse serpAPIResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}
	if apiResponse.Error != "" && len(apiResponse.OrganicResults) == 0 {
		// SerpAPI reports "no results" as a 200 with an error string
		s.deps.Logger.Debug("Search provider reported an error", map[string]interface{}{
			"query": query,
			"error": apiResponse.Error,
		})
	}

	hits := make([]domain.SearchHit, 0, len(apiResponse.OrganicResults))
	for _, r := range apiResponse.OrganicResults {
		hits = append(hits, domain.SearchHit{
			Title:         strings.TrimSpace(r.Title),
			Snippet:       strings.TrimSpace(r.Snippet),
			Link:          strings.TrimSpace(r.Link),
			DisplayedLink: strings.TrimSpace(r.DisplayedLink),
			Source:        strings.TrimSpace(r.Source),
		})
	}
	return hits, nil
}

// ABOUTME: Adoption search pipeline: queries, normalization, concurrent scoring, assembly
// ABOUTME: Upstream failures degrade to fewer listings or to the fallback pair, never to an error

package adoption

import (
	"context"
	"time"

	"github.com/ipierette/catbytes-portfolio/core/config"
	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/core/scoring"
	"github.com/ipierette/catbytes-portfolio/core/search"
)

// Searcher runs one web-search query. Implemented by search.SearchService.
type Searcher interface {
	Search(ctx context.Context, query string) []domain.SearchHit
	Engine() string
}

// AdoptionService implements interfaces.AdoptionSearcher
type AdoptionService struct {
	deps     interfaces.Dependencies
	searcher Searcher
	runner   *scoring.Runner
	cfg      config.AdoptionConfig
}

// NewAdoptionService creates the pipeline. modelName is forwarded to the AI
// scorer and may be empty.
func NewAdoptionService(deps interfaces.Dependencies, searcher Searcher, cfg config.AdoptionConfig, modelName string) *AdoptionService {
	deps.Logger = interfaces.LoggerOrNop(deps.Logger)
	deps.Metrics = interfaces.MetricsOrNop(deps.Metrics)
	return &AdoptionService{
		deps:     deps,
		searcher: searcher,
		runner:   scoring.NewRunner(deps, cfg, modelName),
		cfg:      cfg,
	}
}

// Search runs the whole pipeline for filters. Queries run one after another
// and stop once MaxCandidates unique listings are collected; scoring then
// runs concurrently and the result is sorted and capped.
func (s *AdoptionService) Search(ctx context.Context, filters domain.Filters) *domain.AdoptionResult {
	start := time.Now()
	filters = filters.Normalize()

	queries := search.BuildQueries(filters, s.cfg.Sites)
	collector := NewCollector(s.cfg.MaxCandidates)
	executed := make([]string, 0, len(queries))

	for _, query := range queries {
		if collector.Len() >= s.cfg.MaxCandidates || ctx.Err() != nil {
			break
		}
		executed = append(executed, query)

		hits := s.searcher.Search(ctx, query)
		kept, dropped := 0, 0
		for _, hit := range hits {
			listing, ok := Normalize(hit)
			if !ok {
				dropped++
				continue
			}
			if collector.Add(listing) {
				kept++
			}
		}

		s.deps.Logger.Debug("Adoption query merged", map[string]interface{}{
			"query":   query,
			"hits":    len(hits),
			"kept":    kept,
			"dropped": dropped,
			"total":   collector.Len(),
		})
	}

	candidates := collector.Listings()
	if len(candidates) > s.cfg.MaxCandidates {
		candidates = candidates[:s.cfg.MaxCandidates]
	}

	scored := s.runner.ScoreAll(ctx, candidates, filters)
	result := Assemble(scored, filters, s.cfg.DisplayLimit)

	result.Meta.Engine = s.searcher.Engine()
	result.Meta.Queries = executed
	result.Meta.AIScoring = s.runner.AIEnabled(ctx)
	result.Meta.Scorer = s.runner.ScorerName(ctx)
	result.Meta.Candidates = len(candidates)

	s.deps.Metrics.ObserveAdoptionSearch(len(result.Listings), result.Meta.OnlyFallbacks)
	s.deps.Logger.Info("Adoption search completed", map[string]interface{}{
		"queries":        len(executed),
		"candidates":     len(candidates),
		"returned":       len(result.Listings),
		"only_fallbacks": result.Meta.OnlyFallbacks,
		"duration_ms":    time.Since(start).Milliseconds(),
	})

	return result
}

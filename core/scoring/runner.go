// ABOUTME: Concurrent scoring of a fixed candidate set
// ABOUTME: AI verdict per listing when available, heuristic fallback for that listing only

package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ipierette/catbytes-portfolio/core/config"
	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

// Runner scores every listing of a request concurrently
type Runner struct {
	heuristic *Heuristic
	ai        *AIScorer
	cfg       config.AdoptionConfig
	logger    interfaces.Logger
	metrics   interfaces.Metrics
}

// NewRunner creates a runner. Without deps.TextModel only the heuristic is used.
func NewRunner(deps interfaces.Dependencies, cfg config.AdoptionConfig, modelName string) *Runner {
	r := &Runner{
		heuristic: NewHeuristic(cfg),
		cfg:       cfg,
		logger:    interfaces.LoggerOrNop(deps.Logger),
		metrics:   interfaces.MetricsOrNop(deps.Metrics),
	}
	if deps.TextModel != nil {
		r.ai = NewAIScorer(deps.TextModel, modelName, cfg, deps.Logger, deps.Metrics)
	}
	return r
}

// AIEnabled reports whether listings will be sent to the text model
func (r *Runner) AIEnabled(ctx context.Context) bool {
	return r.ai != nil && featureflags.IsEnabled(ctx, featureflags.AIScoring)
}

// ScorerName names the primary strategy for response metadata
func (r *Runner) ScorerName(ctx context.Context) string {
	if r.AIEnabled(ctx) {
		return r.ai.Name()
	}
	return string(domain.ScoreSourceHeuristic)
}

// ScoreAll returns scored copies of listings in the same order. It waits for
// every listing; a failed AI call only affects its own listing.
func (r *Runner) ScoreAll(ctx context.Context, listings []domain.Listing, filters domain.Filters) []domain.Listing {
	scored := make([]domain.Listing, len(listings))
	copy(scored, listings)
	if len(scored) == 0 {
		return scored
	}

	useAI := r.AIEnabled(ctx)

	var g errgroup.Group
	g.SetLimit(max(r.cfg.ScoringConcurrency, 1))
	for i := range scored {
		i := i
		g.Go(func() error {
			scored[i] = r.scoreOne(ctx, scored[i], filters, useAI)
			return nil
		})
	}
	_ = g.Wait()

	return scored
}

func (r *Runner) scoreOne(ctx context.Context, listing domain.Listing, filters domain.Filters, useAI bool) domain.Listing {
	scoredByAI := false
	if useAI {
		verdict, err := r.ai.Score(ctx, listing, filters)
		if err == nil {
			listing.Score = verdict.Score
			listing.IsAdopted = verdict.IsAdopted
			listing.Reason = verdict.Reason
			listing.ScoreSource = domain.ScoreSourceAI
			scoredByAI = true
		} else {
			r.logger.Warn("AI scoring failed, using heuristic", map[string]interface{}{
				"url":   listing.URL,
				"error": err.Error(),
			})
		}
	}

	if !scoredByAI {
		listing.Score = r.heuristic.Score(listing, filters)
		listing.IsAdopted = false
		listing.Reason = ""
		listing.ScoreSource = domain.ScoreSourceHeuristic
	}

	listing.Score = clamp(max(listing.Score, r.cfg.Weights.MinScore))

	ApplyOverride(&listing, r.cfg.TopTierSites)

	r.metrics.ObserveScore(string(listing.ScoreSource))
	return listing
}

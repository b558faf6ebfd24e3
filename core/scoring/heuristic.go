// ABOUTME: Deterministic listing scorer used when the text model is unavailable or fails
// ABOUTME: Weighted sum of length, quality keywords, filter matches and source trust

package scoring

import (
	"math"
	"unicode/utf8"

	"github.com/ipierette/catbytes-portfolio/core/config"
	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/pkg/utils/textmatch"
)

// QualityKeywords signal a responsible adoption ad. Matched as accent- and
// case-insensitive stems so "castrado", "castrada" and "castração" count once.
var QualityKeywords = []string{
	"castra",
	"vacina",
	"vermifug",
	"dócil",
	"carinhos",
	"fiv",
	"felv",
	"testad",
}

// Heuristic scores listings without any I/O. Safe for concurrent use.
type Heuristic struct {
	weights config.ScoringWeights
	sites   []string
	topTier []string
}

// NewHeuristic creates a heuristic scorer from the pipeline configuration
func NewHeuristic(cfg config.AdoptionConfig) *Heuristic {
	return &Heuristic{
		weights: cfg.Weights,
		sites:   cfg.Sites,
		topTier: cfg.TopTierSites,
	}
}

// Score returns a value in [0,1]
func (h *Heuristic) Score(listing domain.Listing, filters domain.Filters) float64 {
	w := h.weights
	score := 0.0

	if w.LengthTarget > 0 {
		fraction := float64(utf8.RuneCountInString(listing.Description)) / float64(w.LengthTarget)
		score += min(fraction, 1) * w.LengthMax
	}

	text := listing.Text()
	matched := textmatch.CountAny(text, QualityKeywords)
	score += min(float64(matched)*w.KeywordBonus, w.KeywordCap)

	if textmatch.Contains(text, filters.Color) {
		score += w.ColorMatch
	}
	if textmatch.Contains(text, filters.Location) {
		score += w.LocationMatch
	}

	switch {
	case MatchesSite(listing.Source, h.topTier):
		score += w.TopTierBonus
	case MatchesSite(listing.Source, h.sites):
		score += w.TrustedBonus
	}

	return clamp(score)
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

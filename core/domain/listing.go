// ABOUTME: Adoption listing domain models
// ABOUTME: Request-scoped records built from search hits, scored and returned to the site

package domain

import "strings"

// ScoreSource identifies which scorer produced a listing's score.
type ScoreSource string

const (
	ScoreSourceAI        ScoreSource = "ai"
	ScoreSourceHeuristic ScoreSource = "heuristic"
	ScoreSourceOverride  ScoreSource = "override"
	ScoreSourceFallback  ScoreSource = "fallback"
)

// Listing is a single adoption ad surfaced to the user
type Listing struct {
	// Title is the display title, defaulted when the hit has none
	Title string `json:"titulo"`

	// Description is the search snippet
	Description string `json:"descricao"`

	// URL is the absolute URL of the ad; listings are unique by URL
	URL string `json:"url"`

	// Source is the hostname (without www.) or the provider's display label
	Source string `json:"fonte"`

	// Score is the confidence in [0,1]
	Score float64 `json:"score"`

	// IsAdopted is true when the text says the cat already found a home
	IsAdopted bool `json:"is_adopted"`

	// ScoreSource records which scorer produced Score
	ScoreSource ScoreSource `json:"score_source,omitempty"`

	// Reason is the AI scorer's short justification, if any
	Reason string `json:"motivo,omitempty"`
}

// Text returns title and description joined, used by keyword matchers
func (l Listing) Text() string {
	return strings.TrimSpace(l.Title + " " + l.Description)
}

// SearchHit is one organic result as returned by the search provider
type SearchHit struct {
	Title         string `json:"title"`
	Snippet       string `json:"snippet"`
	Link          string `json:"link"`
	DisplayedLink string `json:"displayed_link,omitempty"`
	Source        string `json:"source,omitempty"`
}

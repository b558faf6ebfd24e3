// ABOUTME: Adoption search result envelope and diagnostic metadata
// ABOUTME: Mirrors the payload the portfolio front-end renders as cards

package domain

// AdoptionMeta describes how a result set was produced. Diagnostic only.
type AdoptionMeta struct {
	Engine        string   `json:"engine"`
	Queries       []string `json:"termos"`
	OnlyFallbacks bool     `json:"onlyFallbacks"`
	AIScoring     bool     `json:"aiScoring"`
	Scorer        string   `json:"scorer,omitempty"`
	Candidates    int      `json:"candidatos"`
	Returned      int      `json:"retornados"`
}

// AdoptionResult is the outcome of one adoption search
type AdoptionResult struct {
	Listings []Listing
	Message  string
	Meta     AdoptionMeta
}

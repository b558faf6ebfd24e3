// ABOUTME: Adoption search configuration for service-level tuning of the pipeline
// ABOUTME: Holds allowlists, limits and scoring weights independent of env/HTTP plumbing

package config

import "time"

// ScoringWeights are the empirically tuned heuristic weights. They are
// configuration, not invariants: change them freely.
type ScoringWeights struct {
	// LengthTarget is the description length (runes) that earns the full length bonus
	LengthTarget int

	// LengthMax is the largest contribution from description length
	LengthMax float64

	// KeywordBonus is added for each quality keyword found
	KeywordBonus float64

	// KeywordCap bounds the total keyword contribution
	KeywordCap float64

	// ColorMatch is added when the requested color appears in the text
	ColorMatch float64

	// LocationMatch is added when the requested location appears in the text
	LocationMatch float64

	// TopTierBonus is added for top-tier sources
	TopTierBonus float64

	// TrustedBonus is added for the rest of the allowlist
	TrustedBonus float64

	// MinScore is the floor applied to every scored listing
	MinScore float64
}

// AdoptionConfig controls the adoption search pipeline
type AdoptionConfig struct {
	// Sites is the general allowlist used for the site: clause and trust bonus
	Sites []string

	// TopTierSites are the highly trusted adoption NGOs
	TopTierSites []string

	// MaxCandidates stops issuing queries once this many unique listings exist
	MaxCandidates int

	// DisplayLimit truncates the sorted response; 0 means no limit
	DisplayLimit int

	// ScoringConcurrency bounds concurrent scoring calls
	ScoringConcurrency int

	// AITimeout applies to each AI scoring attempt
	AITimeout time.Duration

	// AIAttempts is the total number of AI calls per listing (first try plus retries)
	AIAttempts int

	// Weights are the heuristic scorer weights
	Weights ScoringWeights
}

// DefaultWeights returns the weights the site shipped with
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		LengthTarget:  400,
		LengthMax:     0.3,
		KeywordBonus:  0.08,
		KeywordCap:    0.3,
		ColorMatch:    0.1,
		LocationMatch: 0.1,
		TopTierBonus:  0.3,
		TrustedBonus:  0.15,
		MinScore:      0.1,
	}
}

// DefaultAdoptionConfig returns the default pipeline configuration
func DefaultAdoptionConfig() AdoptionConfig {
	return AdoptionConfig{
		Sites: []string{
			"adoteumgatinho.org.br",
			"catland.org.br",
			"ampara.org.br",
			"adotepetz.com.br",
			"paraadocao.com.br",
			"olx.com.br",
			"facebook.com",
		},
		TopTierSites: []string{
			"adoteumgatinho.org.br",
			"catland.org.br",
		},
		MaxCandidates:      30,
		DisplayLimit:       20,
		ScoringConcurrency: 8,
		AITimeout:          8 * time.Second,
		AIAttempts:         2,
		Weights:            DefaultWeights(),
	}
}

// AdoptionOption is a functional option for configuring the pipeline
type AdoptionOption func(*AdoptionConfig)

// WithSites replaces the general allowlist
func WithSites(sites ...string) AdoptionOption {
	return func(c *AdoptionConfig) {
		c.Sites = sites
	}
}

// WithTopTierSites replaces the top-tier allowlist
func WithTopTierSites(sites ...string) AdoptionOption {
	return func(c *AdoptionConfig) {
		c.TopTierSites = sites
	}
}

// WithMaxCandidates sets the early-exit threshold for sequential queries
func WithMaxCandidates(n int) AdoptionOption {
	return func(c *AdoptionConfig) {
		c.MaxCandidates = n
	}
}

// WithDisplayLimit sets the response truncation cap
func WithDisplayLimit(n int) AdoptionOption {
	return func(c *AdoptionConfig) {
		c.DisplayLimit = n
	}
}

// WithScoringConcurrency bounds concurrent scoring calls
func WithScoringConcurrency(n int) AdoptionOption {
	return func(c *AdoptionConfig) {
		c.ScoringConcurrency = n
	}
}

// WithAIPolicy sets the per-attempt timeout and the attempt count
func WithAIPolicy(timeout time.Duration, attempts int) AdoptionOption {
	return func(c *AdoptionConfig) {
		c.AITimeout = timeout
		c.AIAttempts = attempts
	}
}

// WithWeights replaces the heuristic weights
func WithWeights(w ScoringWeights) AdoptionOption {
	return func(c *AdoptionConfig) {
		c.Weights = w
	}
}

// NewAdoptionConfig creates a configuration from defaults and the given options
func NewAdoptionConfig(opts ...AdoptionOption) AdoptionConfig {
	config := DefaultAdoptionConfig()

	for _, opt := range opts {
		opt(&config)
	}

	if config.MaxCandidates <= 0 {
		config.MaxCandidates = 30
	}
	if config.ScoringConcurrency <= 0 {
		config.ScoringConcurrency = 1
	}
	if config.AIAttempts <= 0 {
		config.AIAttempts = 1
	}

	return config
}

// ABOUTME: Ad-copy service writes social-media adoption ads from a short description
// ABOUTME: Structured output is decoded into an AdPackage; undecodable text is returned raw

package adcopy

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/errors"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/core/llm"
)

// MaxDescriptionLength bounds the description sent to the model (runes)
const MaxDescriptionLength = 2000

// Options configures the ad writer
type Options struct {
	// Model overrides the provider's default model
	Model string

	// Timeout bounds one generation call; 0 means the caller's deadline only
	Timeout time.Duration
}

// AdService implements interfaces.AdGenerator
type AdService struct {
	deps interfaces.Dependencies
	opts Options
}

// NewAdService creates a new ad-copy service instance
func NewAdService(deps interfaces.Dependencies, opts Options) *AdService {
	deps.Logger = interfaces.LoggerOrNop(deps.Logger)
	deps.Metrics = interfaces.MetricsOrNop(deps.Metrics)
	return &AdService{deps: deps, opts: opts}
}

// Generate writes an ad package for description
func (s *AdService) Generate(ctx context.Context, description string) (*domain.AdPackage, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, &errors.ValidationError{Field: "description", Message: "description is required"}
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, &errors.ValidationError{Field: "description", Message: "description is too long"}
	}
	if s.deps.TextModel == nil {
		return nil, &errors.ConfigurationError{Setting: "AI provider"}
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.deps.TextModel.Complete(ctx, interfaces.CompletionRequest{
		Model: s.opts.Model,
		Messages: []interfaces.Message{
			{Role: interfaces.RoleSystem, Content: instruction},
			{Role: interfaces.RoleUser, Content: "DESCRIÇÃO\n\"\"\"" + description + "\"\"\""},
		},
		MaxTokens:      2048,
		Temperature:    0.8,
		JSONMode:       true,
		ResponseSchema: packageSchema,
	})
	s.deps.Metrics.ObserveUpstream(s.deps.TextModel.Name(), err == nil, time.Since(start))
	if err != nil {
		s.deps.Logger.Error("Ad generation failed", map[string]interface{}{
			"provider": s.deps.TextModel.Name(),
			"error":    err.Error(),
		})
		return nil, llm.UpstreamError(s.deps.TextModel.Name(), err)
	}

	pkg := decodePackage(resp.Content)
	s.deps.Logger.Info("Ad generated", map[string]interface{}{
		"provider": s.deps.TextModel.Name(),
		"raw":      pkg.Raw != "",
		"hashtags": len(pkg.Hashtags),
	})
	return pkg, nil
}

// decodePackage never fails: text that is not a usable package comes back as Raw
func decodePackage(text string) *domain.AdPackage {
	var pkg domain.AdPackage
	if err := llm.DecodeJSON(text, &pkg); err != nil || (pkg.Title == "" && pkg.AdCopy == "") {
		return &domain.AdPackage{Raw: strings.TrimSpace(text)}
	}
	pkg.Title = strings.TrimSpace(pkg.Title)
	pkg.Raw = ""
	pkg.Hashtags = normalizeHashtags(pkg.Hashtags)
	return &pkg
}

func normalizeHashtags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.Join(strings.Fields(tag), "")
		tag = strings.TrimLeft(tag, "#")
		if tag == "" {
			continue
		}
		tag = "#" + tag
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

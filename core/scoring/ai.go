// ABOUTME: Text-model listing scorer with a per-attempt timeout and one bounded retry
// ABOUTME: Asks for a {score, reason, is_adopted} object via structured output

package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ipierette/catbytes-portfolio/core/config"
	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/core/llm"
)

// ErrNoVerdict is returned when every attempt failed
var ErrNoVerdict = errors.New("no AI verdict")

// Verdict is the AI scorer's answer for one listing, score already in [0,1]
type Verdict struct {
	Score     float64
	Reason    string
	IsAdopted bool
}

// verdictSchema is sent as the provider's response schema
var verdictSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"score": map[string]interface{}{
			"type":        "integer",
			"minimum":     1,
			"maximum":     10,
			"description": "confidence that this is a real cat adoption ad",
		},
		"reason": map[string]interface{}{
			"type": "string",
		},
		"is_adopted": map[string]interface{}{
			"type": "boolean",
		},
	},
	"required": []string{"score", "reason", "is_adopted"},
}

const scoringInstruction = `Você avalia anúncios de adoção de gatos no Brasil.
Responda somente com JSON no formato {"score": 1-10, "reason": "...", "is_adopted": true|false}.
score alto = anúncio real de adoção responsável; baixo = venda, spam ou fora do tema.
is_adopted = true quando o texto diz que o gato já foi adotado.`

type rawVerdict struct {
	Score     *float64 `json:"score"`
	Reason    string   `json:"reason"`
	IsAdopted bool     `json:"is_adopted"`
}

// AIScorer scores listings with a text model
type AIScorer struct {
	model     interfaces.TextModel
	modelName string
	timeout   time.Duration
	attempts  int
	logger    interfaces.Logger
	metrics   interfaces.Metrics
}

// NewAIScorer creates an AI scorer. modelName may be empty to use the provider default.
func NewAIScorer(model interfaces.TextModel, modelName string, cfg config.AdoptionConfig, logger interfaces.Logger, metrics interfaces.Metrics) *AIScorer {
	attempts := cfg.AIAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &AIScorer{
		model:     model,
		modelName: modelName,
		timeout:   cfg.AITimeout,
		attempts:  attempts,
		logger:    interfaces.LoggerOrNop(logger),
		metrics:   interfaces.MetricsOrNop(metrics),
	}
}

// Name returns the underlying provider name
func (a *AIScorer) Name() string {
	return a.model.Name()
}

// Score asks the model for a verdict. Every attempt gets its own timeout;
// after the last failed attempt ErrNoVerdict is returned.
func (a *AIScorer) Score(ctx context.Context, listing domain.Listing, filters domain.Filters) (Verdict, error) {
	req := interfaces.CompletionRequest{
		Model: a.modelName,
		Messages: []interfaces.Message{
			{Role: interfaces.RoleSystem, Content: scoringInstruction},
			{Role: interfaces.RoleUser, Content: describe(listing, filters)},
		},
		MaxTokens:      200,
		Temperature:    0.2,
		JSONMode:       true,
		ResponseSchema: verdictSchema,
	}

	var lastErr error
	for attempt := 1; attempt <= a.attempts; attempt++ {
		verdict, err := a.attempt(ctx, req)
		if err == nil {
			return verdict, nil
		}
		lastErr = err

		a.logger.Debug("AI scoring attempt failed", map[string]interface{}{
			"url":     listing.URL,
			"attempt": attempt,
			"error":   err.Error(),
		})

		if ctx.Err() != nil {
			break
		}
	}

	return Verdict{}, fmt.Errorf("%w: %v", ErrNoVerdict, lastErr)
}

func (a *AIScorer) attempt(ctx context.Context, req interfaces.CompletionRequest) (Verdict, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := a.model.Complete(ctx, req)
	a.metrics.ObserveUpstream(a.model.Name(), err == nil, time.Since(start))
	if err != nil {
		return Verdict{}, err
	}

	var raw rawVerdict
	if err := llm.DecodeJSON(resp.Content, &raw); err != nil {
		return Verdict{}, err
	}
	if raw.Score == nil {
		return Verdict{}, errors.New("verdict has no score")
	}

	score := *raw.Score
	switch {
	case score < 1:
		score = 1
	case score > 10:
		score = 10
	}

	return Verdict{
		Score:     score / 10,
		Reason:    strings.TrimSpace(raw.Reason),
		IsAdopted: raw.IsAdopted,
	}, nil
}

func describe(listing domain.Listing, filters domain.Filters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Título: %s\n", listing.Title)
	fmt.Fprintf(&b, "Descrição: %s\n", listing.Description)
	fmt.Fprintf(&b, "Fonte: %s\n", listing.Source)
	if filters.Color != "" {
		fmt.Fprintf(&b, "Cor procurada: %s\n", filters.Color)
	}
	if filters.Age != "" {
		fmt.Fprintf(&b, "Idade procurada: %s\n", filters.Age)
	}
	if filters.Location != "" {
		fmt.Fprintf(&b, "Localização procurada: %s\n", filters.Location)
	}
	return b.String()
}

package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipierette/catbytes-portfolio/core/config"
	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

func aiConfig(timeout time.Duration, attempts int) config.AdoptionConfig {
	return config.NewAdoptionConfig(config.WithAIPolicy(timeout, attempts))
}

var sampleListing = domain.Listing{
	Title:       "Mia procura um lar",
	Description: "Gatinha preta castrada e vacinada em São Paulo",
	URL:         "https://catland.org.br/mia",
	Source:      "catland.org.br",
}

func TestAIScorer_ParsesVerdict(t *testing.T) {
	model := &mockTextModel{
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
			return reply(`{"score": 8, "reason": " ONG conhecida ", "is_adopted": false}`)
		},
	}
	scorer := NewAIScorer(model, "gemini-test", aiConfig(time.Second, 2), nil, nil)

	verdict, err := scorer.Score(context.Background(), sampleListing, domain.Filters{Color: "preto"})

	require.NoError(t, err)
	assert.InDelta(t, 0.8, verdict.Score, 1e-9)
	assert.Equal(t, "ONG conhecida", verdict.Reason)
	assert.False(t, verdict.IsAdopted)
	require.Equal(t, 1, model.calls())

	req := model.requests[0]
	assert.Equal(t, "gemini-test", req.Model)
	assert.True(t, req.JSONMode)
	assert.NotNil(t, req.ResponseSchema)
	assert.Contains(t, req.Messages[1].Content, "catland.org.br")
	assert.Contains(t, req.Messages[1].Content, "Cor procurada: preto")
}

func TestAIScorer_BraceScanFallback(t *testing.T) {
	model := &mockTextModel{
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
			return reply("Segue a avaliação:\n{\"score\": 10, \"reason\": \"ok\", \"is_adopted\": true}\n")
		},
	}
	scorer := NewAIScorer(model, "", aiConfig(time.Second, 1), nil, nil)

	verdict, err := scorer.Score(context.Background(), sampleListing, domain.Filters{})

	require.NoError(t, err)
	assert.Equal(t, 1.0, verdict.Score)
	assert.True(t, verdict.IsAdopted)
}

func TestAIScorer_ClampsOutOfRangeScores(t *testing.T) {
	tests := []struct {
		content string
		want    float64
	}{
		{`{"score": 15}`, 1.0},
		{`{"score": 0}`, 0.1},
		{`{"score": 6.5}`, 0.65},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			model := &mockTextModel{
				completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
					return reply(tt.content)
				},
			}
			verdict, err := NewAIScorer(model, "", aiConfig(time.Second, 1), nil, nil).Score(context.Background(), sampleListing, domain.Filters{})

			require.NoError(t, err)
			assert.InDelta(t, tt.want, verdict.Score, 1e-9)
		})
	}
}

func TestAIScorer_RetriesOnceThenGivesUp(t *testing.T) {
	model := &mockTextModel{
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
			return nil, errors.New("503 service unavailable")
		},
	}
	scorer := NewAIScorer(model, "", aiConfig(time.Second, 2), nil, nil)

	_, err := scorer.Score(context.Background(), sampleListing, domain.Filters{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoVerdict))
	assert.Equal(t, 2, model.calls())
}

func TestAIScorer_RetryRecovers(t *testing.T) {
	model := &mockTextModel{}
	model.completeFunc = func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
		if model.calls() == 1 {
			return reply("desculpe, não consigo avaliar")
		}
		return reply(`{"score": 7, "reason": "ok", "is_adopted": false}`)
	}
	scorer := NewAIScorer(model, "", aiConfig(time.Second, 2), nil, nil)

	verdict, err := scorer.Score(context.Background(), sampleListing, domain.Filters{})

	require.NoError(t, err)
	assert.InDelta(t, 0.7, verdict.Score, 1e-9)
	assert.Equal(t, 2, model.calls())
}

func TestAIScorer_MissingScoreIsFailure(t *testing.T) {
	model := &mockTextModel{
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
			return reply(`{"reason": "sem nota"}`)
		},
	}

	_, err := NewAIScorer(model, "", aiConfig(time.Second, 1), nil, nil).Score(context.Background(), sampleListing, domain.Filters{})

	assert.Error(t, err)
}

func TestAIScorer_PerAttemptTimeout(t *testing.T) {
	model := &mockTextModel{
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	scorer := NewAIScorer(model, "", aiConfig(20*time.Millisecond, 2), nil, nil)

	start := time.Now()
	_, err := scorer.Score(context.Background(), sampleListing, domain.Filters{})

	require.Error(t, err)
	assert.Equal(t, 2, model.calls())
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestAIScorer_StopsWhenCallerCancels(t *testing.T) {
	model := &mockTextModel{
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
			return nil, ctx.Err()
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAIScorer(model, "", aiConfig(time.Second, 3), nil, nil).Score(ctx, sampleListing, domain.Filters{})

	require.Error(t, err)
	assert.Equal(t, 1, model.calls())
}

package scoring

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

// mockTextModel is a mock implementation of the TextModel interface
type mockTextModel struct {
	mu           sync.Mutex
	requests     []interfaces.CompletionRequest
	completeFunc func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error)
}

func (m *mockTextModel) Complete(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}
	return nil, errors.New("no completion configured")
}

func (m *mockTextModel) Name() string {
	return "mock"
}

func (m *mockTextModel) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func reply(content string) (*interfaces.CompletionResponse, error) {
	return &interfaces.CompletionResponse{Content: content}, nil
}

// mockMetrics records scorer observations
type mockMetrics struct {
	mu     sync.Mutex
	scores map[string]int
}

func (m *mockMetrics) ObserveUpstream(string, bool, time.Duration) {}

func (m *mockMetrics) ObserveScore(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scores == nil {
		m.scores = make(map[string]int)
	}
	m.scores[source]++
}

func (m *mockMetrics) ObserveAdoptionSearch(int, bool) {}

package adoption

import (
	"context"
	"errors"
	"sync"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

// mockSearcher returns canned hits per query and records the queries it saw
type mockSearcher struct {
	mu         sync.Mutex
	queries    []string
	searchFunc func(ctx context.Context, query string) []domain.SearchHit
}

func (m *mockSearcher) Search(ctx context.Context, query string) []domain.SearchHit {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil
}

func (m *mockSearcher) Engine() string {
	return "google"
}

// mockTextModel is a mock implementation of the TextModel interface
type mockTextModel struct {
	completeFunc func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error)
}

func (m *mockTextModel) Complete(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}
	return nil, errors.New("no completion configured")
}

func (m *mockTextModel) Name() string {
	return "mock"
}

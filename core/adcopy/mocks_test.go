package adcopy

import (
	"context"
	"errors"

	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

// mockTextModel is a mock implementation of the TextModel interface
type mockTextModel struct {
	lastRequest  interfaces.CompletionRequest
	calls        int
	completeFunc func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error)
}

func (m *mockTextModel) Complete(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
	m.calls++
	m.lastRequest = req
	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}
	return nil, errors.New("no completion configured")
}

func (m *mockTextModel) Name() string {
	return "mock"
}

func replying(content string) *mockTextModel {
	return &mockTextModel{
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
			return &interfaces.CompletionResponse{Content: content}, nil
		},
	}
}

// ABOUTME: OpenAI text model adapter built on go-openai
// ABOUTME: Maps chat messages, image data URLs and structured output onto Chat Completions

package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/ipierette/catbytes-portfolio/core/errors"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

const (
	// DefaultModel is used when neither the provider nor the request names one
	DefaultModel = "gpt-4o-mini"

	providerName = "openai"
)

// Provider implements interfaces.TextModel for OpenAI
type Provider struct {
	client  *openai.Client
	model   string
	hasKey  bool
	metrics interfaces.Metrics
}

// Option configures a Provider
type Option func(*openai.ClientConfig, *Provider)

// WithBaseURL points the client at another endpoint (tests, Azure-style proxies)
func WithBaseURL(u string) Option {
	return func(cfg *openai.ClientConfig, _ *Provider) {
		cfg.BaseURL = u
	}
}

// WithMetrics records each call as an upstream observation
func WithMetrics(m interfaces.Metrics) Option {
	return func(_ *openai.ClientConfig, p *Provider) {
		p.metrics = m
	}
}

// NewProvider creates a new OpenAI provider
func NewProvider(apiKey, model string, opts ...Option) *Provider {
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	p := &Provider{
		model:  model,
		hasKey: apiKey != "",
	}
	for _, opt := range opts {
		opt(&cfg, p)
	}
	p.client = openai.NewClientWithConfig(cfg)
	p.metrics = interfaces.MetricsOrNop(p.metrics)
	return p
}

// Name returns the provider name
func (p *Provider) Name() string {
	return providerName
}

// Complete sends one chat completion
func (p *Provider) Complete(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
	if !p.hasKey {
		return nil, &apperrors.ConfigurationError{Setting: "OPENAI_API_KEY"}
	}

	model := req.Model
	if model == "" {
		model = p.model
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toMessages(req.Messages),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}

	switch {
	case req.ResponseSchema != nil:
		schema, err := json.Marshal(req.ResponseSchema)
		if err != nil {
			return nil, err
		}
		apiReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "response",
				Schema: json.RawMessage(schema),
			},
		}
	case req.JSONMode:
		apiReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, apiReq)
	p.metrics.ObserveUpstream(providerName, err == nil, time.Since(start))
	if err != nil {
		return nil, toAppError(err)
	}

	out := &interfaces.CompletionResponse{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.FinishReason = string(resp.Choices[0].FinishReason)
	}
	return out, nil
}

func toMessages(msgs []interfaces.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, msg := range msgs {
		if len(msg.Images) == 0 {
			out = append(out, openai.ChatCompletionMessage{
				Role:    string(msg.Role),
				Content: msg.Content,
			})
			continue
		}

		parts := make([]openai.ChatMessagePart, 0, len(msg.Images)+1)
		if msg.Content != "" {
			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeText,
				Text: msg.Content,
			})
		}
		for _, img := range msg.Images {
			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    "data:" + img.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(img.Data),
					Detail: openai.ImageURLDetailAuto,
				},
			})
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:         string(msg.Role),
			MultiContent: parts,
		})
	}
	return out
}

// toAppError keeps the upstream status so handlers can map 429 and 5xx
func toAppError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &apperrors.ExternalAPIError{API: providerName, StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &apperrors.ExternalAPIError{API: providerName, StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}
	return err
}

// ABOUTME: Gemini text model adapter over the generativelanguage REST API
// ABOUTME: Supports system instructions, inline images and schema-constrained JSON output

package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/ipierette/catbytes-portfolio/core/errors"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

const (
	// DefaultBaseURL is the v1beta models endpoint
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// DefaultModel is used when neither the provider nor the request names one
	DefaultModel = "gemini-1.5-flash"

	providerName = "gemini"
)

// Provider implements interfaces.TextModel for Google Gemini
type Provider struct {
	apiKey  string
	model   string
	baseURL string
	client  interfaces.HTTPClient
	metrics interfaces.Metrics
}

// Option configures a Provider
type Option func(*Provider)

// WithBaseURL points the provider at another endpoint (tests, proxies)
func WithBaseURL(u string) Option {
	return func(p *Provider) {
		p.baseURL = strings.TrimRight(u, "/")
	}
}

// WithMetrics records each call as an upstream observation
func WithMetrics(m interfaces.Metrics) Option {
	return func(p *Provider) {
		p.metrics = m
	}
}

// NewProvider creates a Gemini provider sending requests through client
func NewProvider(client interfaces.HTTPClient, apiKey, model string, opts ...Option) *Provider {
	if model == "" {
		model = DefaultModel
	}
	p := &Provider{
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultBaseURL,
		client:  client,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.metrics = interfaces.MetricsOrNop(p.metrics)
	return p
}

// Name returns the provider name
func (p *Provider) Name() string {
	return providerName
}

type request struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	MaxOutputTokens  int                    `json:"maxOutputTokens,omitempty"`
	Temperature      float64                `json:"temperature"`
	ResponseMIMEType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

type response struct {
	Candidates []struct {
		Content      *content `json:"content"`
		FinishReason string   `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Complete sends one generateContent call
func (p *Provider) Complete(ctx context.Context, req interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
	if p.apiKey == "" {
		return nil, &apperrors.ConfigurationError{Setting: "GEMINI_API_KEY"}
	}
	if p.client == nil {
		return nil, &apperrors.ConfigurationError{Setting: "HTTP client"}
	}

	model := req.Model
	if model == "" {
		model = p.model
	}

	body, err := json.Marshal(buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", p.baseURL, url.PathEscape(model), url.QueryEscape(p.apiKey))

	start := time.Now()
	out, err := p.send(ctx, endpoint, body)
	p.metrics.ObserveUpstream(providerName, err == nil, time.Since(start))
	if err != nil {
		return nil, err
	}
	out.Model = model
	return out, nil
}

func (p *Provider) send(ctx context.Context, endpoint string, body []byte) (*interfaces.CompletionResponse, error) {
	resp, err := p.client.Post(ctx, endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body().Close()

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}

	var apiResp response
	decodeErr := json.Unmarshal(raw, &apiResp)

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		msg := strings.TrimSpace(string(raw))
		if decodeErr == nil && apiResp.Error != nil {
			msg = apiResp.Error.Message
		}
		return nil, &apperrors.ExternalAPIError{API: providerName, StatusCode: resp.StatusCode(), Message: msg}
	}
	if decodeErr != nil {
		return nil, &apperrors.ExternalAPIError{API: providerName, StatusCode: 502, Message: "invalid response body: " + decodeErr.Error()}
	}
	if apiResp.Error != nil {
		return nil, &apperrors.ExternalAPIError{API: providerName, StatusCode: 502, Message: apiResp.Error.Message}
	}

	out := &interfaces.CompletionResponse{}
	if len(apiResp.Candidates) > 0 {
		c := apiResp.Candidates[0]
		out.FinishReason = c.FinishReason
		if c.Content != nil {
			var sb strings.Builder
			for _, pt := range c.Content.Parts {
				sb.WriteString(pt.Text)
			}
			out.Content = sb.String()
		}
	}
	if apiResp.UsageMetadata != nil {
		out.InputTokens = apiResp.UsageMetadata.PromptTokenCount
		out.OutputTokens = apiResp.UsageMetadata.CandidatesTokenCount
	}
	return out, nil
}

func buildRequest(req interfaces.CompletionRequest) request {
	var system []part
	var contents []content

	for _, msg := range req.Messages {
		switch msg.Role {
		case interfaces.RoleSystem:
			system = append(system, part{Text: msg.Content})
		case interfaces.RoleAssistant:
			contents = append(contents, content{Role: "model", Parts: []part{{Text: msg.Content}}})
		default:
			parts := make([]part, 0, len(msg.Images)+1)
			if msg.Content != "" {
				parts = append(parts, part{Text: msg.Content})
			}
			for _, img := range msg.Images {
				parts = append(parts, part{InlineData: &inlineData{
					MIMEType: img.MIMEType,
					Data:     base64.StdEncoding.EncodeToString(img.Data),
				}})
			}
			contents = append(contents, content{Role: "user", Parts: parts})
		}
	}

	if len(contents) == 0 {
		contents = append(contents, content{Role: "user", Parts: []part{{Text: ""}}})
	}

	out := request{
		Contents: contents,
		GenerationConfig: &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if len(system) > 0 {
		out.SystemInstruction = &content{Parts: system}
	}
	if req.JSONMode || req.ResponseSchema != nil {
		out.GenerationConfig.ResponseMIMEType = "application/json"
		out.GenerationConfig.ResponseSchema = req.ResponseSchema
	}
	return out
}

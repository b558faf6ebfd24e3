// ABOUTME: Generative text model contract shared by the AI scorer, ad writer and cat identifier
// ABOUTME: Provider adapters (Gemini, OpenAI) live in infrastructure/llm

package interfaces

import "context"

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// InlineImage is binary image data sent alongside a message.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

// Message represents a single message in a conversation.
type Message struct {
	Role    Role
	Content string
	Images  []InlineImage
}

// CompletionRequest contains the parameters for a completion request.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64

	// JSONMode asks the provider to return a bare JSON document.
	JSONMode bool

	// ResponseSchema, when set, is a JSON-schema object the provider should
	// enforce (structured output). Providers without schema support fall
	// back to JSONMode.
	ResponseSchema map[string]interface{}
}

// CompletionResponse contains the result of a completion request.
type CompletionResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}

// TextModel defines the interface for generative model providers.
type TextModel interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider name, used in logs and response metadata.
	Name() string
}

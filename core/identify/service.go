// ABOUTME: Cat identification service estimates age, breeds and temperament from a photo
// ABOUTME: Sends the image inline to the text model and normalizes pt/en answer keys

package identify

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/errors"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/core/llm"
)

const (
	// MaxImageBytes is the largest accepted upload
	MaxImageBytes = 8 << 20

	// UnknownAge is reported when the model gives no estimate
	UnknownAge = "--"
)

const instruction = `Responda em pt-BR. Analise esta foto de gato e retorne somente JSON, sem markdown,
exatamente neste formato: {"idade":"~X meses/anos (intervalo)","racas":["..."],"personalidade":["..."],"observacoes":"..."}.
Seja breve e conservador nas estimativas. Se não for um gato, responda {"observacoes":"imagem sem gato."}.`

var stringList = map[string]interface{}{
	"type":  "array",
	"items": map[string]interface{}{"type": "string"},
}

var profileSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"idade":         map[string]interface{}{"type": "string"},
		"racas":         stringList,
		"personalidade": stringList,
		"observacoes":   map[string]interface{}{"type": "string"},
	},
	"required": []string{"observacoes"},
}

// Options configures the identifier
type Options struct {
	Model   string
	Timeout time.Duration
}

// IdentifyService implements interfaces.CatIdentifier
type IdentifyService struct {
	deps interfaces.Dependencies
	opts Options
}

// NewIdentifyService creates a new identification service instance
func NewIdentifyService(deps interfaces.Dependencies, opts Options) *IdentifyService {
	deps.Logger = interfaces.LoggerOrNop(deps.Logger)
	deps.Metrics = interfaces.MetricsOrNop(deps.Metrics)
	return &IdentifyService{deps: deps, opts: opts}
}

// Identify asks the model about the cat in image
func (s *IdentifyService) Identify(ctx context.Context, image domain.Image) (*domain.CatProfile, error) {
	mimeType, err := checkImage(image)
	if err != nil {
		return nil, err
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
		Messages: []interfaces.Message{{
			Role:    interfaces.RoleUser,
			Content: instruction,
			Images:  []interfaces.InlineImage{{MIMEType: mimeType, Data: image.Data}},
		}},
		MaxTokens:      512,
		Temperature:    0.2,
		JSONMode:       true,
		ResponseSchema: profileSchema,
	})
	s.deps.Metrics.ObserveUpstream(s.deps.TextModel.Name(), err == nil, time.Since(start))
	if err != nil {
		s.deps.Logger.Error("Cat identification failed", map[string]interface{}{
			"provider": s.deps.TextModel.Name(),
			"bytes":    len(image.Data),
			"error":    err.Error(),
		})
		return nil, llm.UpstreamError(s.deps.TextModel.Name(), err)
	}

	profile := decodeProfile(resp.Content)
	s.deps.Logger.Info("Cat identified", map[string]interface{}{
		"provider": s.deps.TextModel.Name(),
		"breeds":   len(profile.Breeds),
	})
	return profile, nil
}

// checkImage validates size and type, sniffing the content when the
// declared type is missing or generic
func checkImage(image domain.Image) (string, error) {
	if len(image.Data) == 0 {
		return "", &errors.ValidationError{Field: "data", Message: "image file is required"}
	}
	if len(image.Data) > MaxImageBytes {
		return "", &errors.ValidationError{Field: "data", Message: "image exceeds 8 MB"}
	}

	mimeType := strings.ToLower(strings.TrimSpace(image.MIMEType))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(image.Data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", &errors.ValidationError{Field: "data", Message: "file is not an image"}
	}
	return mimeType, nil
}

// rawProfile accepts both the Portuguese keys we ask for and English ones
type rawProfile struct {
	Idade         string   `json:"idade"`
	Age           string   `json:"age"`
	Racas         []string `json:"racas"`
	Breeds        []string `json:"breeds"`
	Personalidade []string `json:"personalidade"`
	Personality   []string `json:"personality"`
	Observacoes   string   `json:"observacoes"`
	Notes         string   `json:"notes"`
}

func decodeProfile(text string) *domain.CatProfile {
	var raw rawProfile
	if err := decodeLenient(text, &raw); err != nil {
		notes := strings.TrimSpace(text)
		if notes == "" {
			notes = "sem dados"
		}
		return &domain.CatProfile{Age: UnknownAge, Breeds: []string{}, Personality: []string{}, Notes: notes}
	}

	return &domain.CatProfile{
		Age:         firstNonEmpty(raw.Idade, raw.Age, UnknownAge),
		Breeds:      firstNonNil(raw.Racas, raw.Breeds),
		Personality: firstNonNil(raw.Personalidade, raw.Personality),
		Notes:       firstNonEmpty(raw.Observacoes, raw.Notes, ""),
	}
}

// decodeLenient tolerates loosely typed answers: a numeric age becomes a
// string, and list or note fields of the wrong type are ignored
func decodeLenient(text string, raw *rawProfile) error {
	var generic map[string]json.RawMessage
	if err := llm.DecodeJSON(text, &generic); err != nil {
		return err
	}
	for _, key := range []string{"idade", "age"} {
		if v, ok := generic[key]; ok && len(v) > 0 && v[0] != '"' && string(v) != "null" {
			quoted, _ := json.Marshal(string(v))
			generic[key] = quoted
		}
	}
	for _, key := range []string{"racas", "breeds", "personalidade", "personality"} {
		if v, ok := generic[key]; ok && (len(v) == 0 || v[0] != '[') {
			delete(generic, key)
		}
	}
	for _, key := range []string{"observacoes", "notes"} {
		if v, ok := generic[key]; ok && (len(v) == 0 || v[0] != '"') {
			delete(generic, key)
		}
	}
	normalized, err := json.Marshal(generic)
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstNonNil(lists ...[]string) []string {
	for _, l := range lists {
		if l != nil {
			return l
		}
	}
	return []string{}
}

// ABOUTME: JSON extraction for generative model output
// ABOUTME: Strict decode first; brace scanning is a best-effort last resort

package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when text contains no decodable JSON object
var ErrNoJSON = errors.New("no JSON object in model output")

// DecodeJSON decodes the model's reply into v. Providers are asked for
// structured output, so the whole text is tried first. When that fails the
// first balanced {...} block is extracted and decoded instead.
func DecodeJSON(text string, v interface{}) error {
	text = stripFences(strings.TrimSpace(text))
	if text == "" {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}

	object, ok := ExtractObject(text)
	if !ok {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(object), v); err != nil {
		return errors.Join(ErrNoJSON, err)
	}
	return nil
}

// ExtractObject returns the first balanced JSON object in text. Braces
// inside string literals are ignored.
func ExtractObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	for start >= 0 {
		if end := matchBrace(text, start); end > start {
			return text[start : end+1], true
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripFences removes a surrounding ```json ... ``` block
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}

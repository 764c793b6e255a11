package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSONObject = errors.New("no JSON object in model output")

// TextGenerator is a single-shot text completion backend.
type TextGenerator interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	Provider() string
	Close() error
}

// NewTextGenerator picks the backend by provider name.
func NewTextGenerator(provider, apiKey, baseURL, model string) (TextGenerator, error) {
	switch strings.ToLower(provider) {
	case "", "openai":
		return NewOpenAITextClient(apiKey, baseURL, model), nil
	case "gemini":
		c, err := NewGeminiTextClient(apiKey, model)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}

// ExtractJSONObject strips markdown fences and returns the outermost {...} span.
func ExtractJSONObject(response string) (string, error) {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return "", ErrNoJSONObject
	}
	end := findMatchingBrace(response, start)
	if end == -1 {
		return "", ErrNoJSONObject
	}
	return response[start : end+1], nil
}

func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
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

// Package agent connects the rental collection to a Gemini language model.
//
// It holds the two delegated operations, extraction of a property from free
// text and the advisory narrative over the whole collection, plus the
// interactive assistant used by `rnt assist`.
package agent

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

var (
	// ErrNotConfigured is returned when no API key is available. It is always
	// reported before any network call.
	ErrNotConfigured = errors.New("AI delegate not configured: set GEMINI_API_KEY")
	// ErrExtractionUnavailable is returned when the delegate cannot turn a text
	// into a property.
	ErrExtractionUnavailable = errors.New("AI extraction unavailable")
	// ErrAdvisoryUnavailable is returned when the delegate cannot produce an
	// advisory narrative.
	ErrAdvisoryUnavailable = errors.New("advisory unavailable")
)

// Models is the content generation capability of *genai.Models.
type Models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Connect creates a Gemini client for apiKey.
func Connect(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Gemini client: %w", err)
	}
	return client, nil
}

// modelOrDefault returns m, or DefaultModel when empty.
func modelOrDefault(m string) string {
	if m == "" {
		return DefaultModel
	}
	return m
}

// text returns the text of the first candidate of resp.
func text(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var s string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			s += part.Text
		}
	}
	return s
}

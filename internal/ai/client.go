// Package ai provides the external candidate source: a Gemini-backed
// collaborator that turns a category or search query into a list of partial
// catalog items. The core treats it as a black box that either returns
// candidates or fails.
package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/mstrand/cinestream/internal/config"
)

// NewClient creates a Gemini API client from the AI configuration.
func NewClient(ctx context.Context, cfg config.AIConfig) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

package llm

import (
	"context"
	"errors"
)

// Client abstracts completion providers for document generation.
type Client interface {
	// Complete sends a prompt and returns the raw text completion.
	Complete(ctx context.Context, prompt string) (string, error)
	// CompleteJSON sends a prompt requesting a JSON object response.
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client when no provider
// has been wired up.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient stands in when LLM_PROVIDER is unset. Every call fails
// with ErrNotConfigured so generation records transition to failed with a
// clear message instead of hanging.
type PlaceholderClient struct{}

func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

func (PlaceholderClient) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

var _ Client = PlaceholderClient{}

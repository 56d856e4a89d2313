// Package brain answers questions about headlines and summarizes a category
// through a chat-completion provider.
package brain

import (
	"context"
	"errors"
)

// ErrNotConfigured is recorded on answers produced without calling the
// provider because the completion key failed the validity check.
var ErrNotConfigured = errors.New("API key not configured")

// Provider is the interface for completion providers
type Provider interface {
	// Name returns the provider name (e.g., "openai")
	Name() string

	// Available returns true if the provider is configured and ready
	Available() bool

	// Generate sends a prompt and returns the response
	Generate(ctx context.Context, req Request) (Response, error)
}

// Request is a prompt request to a completion provider
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// Response is the provider's response
type Response struct {
	Content      string
	Model        string
	FinishReason string
}

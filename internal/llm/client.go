package llm

import (
	"context"
)

// Client is an interface for invoking text generation models.
// This allows mocking in tests without making real API calls.
type Client interface {
	Generate(ctx context.Context, request GenerateRequest) (*GenerateResponse, error)
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for section quality analysis.
type Client interface {
	ScoreSection(ctx context.Context, input SectionInput) (json.RawMessage, error)
}

// SectionInput captures everything the provider needs to judge one resume
// section against a job.
type SectionInput struct {
	Content      string
	Requirements []string
	ATSKeywords  []string
	Seniority    string
	Industry     string
	JobTitle     string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is used when no provider is configured. Callers that
// score through it get the documented zero-confidence fallback.
type PlaceholderClient struct{}

// ScoreSection returns ErrNotImplemented.
func (PlaceholderClient) ScoreSection(ctx context.Context, input SectionInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}

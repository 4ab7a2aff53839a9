// Package llm provides a provider-agnostic interface for discovering the
// models an LLM API exposes, plus implementations backed by vendor SDKs.
package llm

import (
	"context"
	"time"
)

// ModelLister abstracts an LLM API behind a single synchronous list call.
type ModelLister interface {
	// ListModels returns the provider's available models in the order the
	// API reports them. Implementations must respect context cancellation.
	ListModels(ctx context.Context) ([]Model, error)
}

// Model is a single entry in a provider's model list.
type Model struct {
	// ID is the identifier used to address the model in API requests.
	ID string

	// DisplayName is the human-readable name, if the provider reports one.
	DisplayName string

	// CreatedAt is the release time reported by the provider. Zero if unknown.
	CreatedAt time.Time
}

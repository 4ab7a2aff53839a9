package llm

import (
	"context"
	"sync"
)

// MockLister is a test double that returns a fixed model list or error.
// It counts every call for later assertion.
type MockLister struct {
	mu     sync.Mutex
	models []Model
	err    error
	calls  int
}

// Compile-time check that MockLister satisfies the ModelLister interface.
var _ ModelLister = (*MockLister)(nil)

// NewMockLister creates a mock that returns the given models on every call.
func NewMockLister(models ...Model) *MockLister {
	return &MockLister{models: models}
}

// NewFailingMockLister creates a mock whose ListModels always returns err.
func NewFailingMockLister(err error) *MockLister {
	return &MockLister{err: err}
}

// ListModels returns a copy of the canned models and records the call.
// It respects context cancellation.
func (m *MockLister) ListModels(ctx context.Context) ([]Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	out := make([]Model, len(m.models))
	copy(out, m.models)
	return out, nil
}

// Calls returns the number of ListModels calls received by this mock.
func (m *MockLister) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

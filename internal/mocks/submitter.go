package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/classroom-assist/internal/generation"
)

// MockSubmitter implements generation.Submitter for testing
type MockSubmitter struct {
	// SubmitFn allows test cases to mock the Submit behavior
	SubmitFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

var _ generation.Submitter = (*MockSubmitter)(nil)

// Submit implements the generation.Submitter interface
func (m *MockSubmitter) Submit(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, prompt)
	}
	return m.Text, m.Err
}

// Prompts returns every prompt received so far, in order.
func (m *MockSubmitter) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// CallCount returns the number of Submit calls.
func (m *MockSubmitter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// NewMockSubmitterWithText creates a MockSubmitter that always returns text
func NewMockSubmitterWithText(text string) *MockSubmitter {
	return &MockSubmitter{Text: text}
}

// NewMockSubmitterWithError creates a MockSubmitter that always fails with err
func NewMockSubmitterWithError(err error) *MockSubmitter {
	return &MockSubmitter{Err: err}
}

package generation

import "context"

// Submitter is one call to a remote generative-text service.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Submitter interface {
	// Submit sends the prompt and returns the generated text, or an error
	// for any failure (network, malformed response, rate limit, ...).
	Submit(ctx context.Context, prompt string) (string, error)
}

// SubmitterFunc adapts an ordinary function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, prompt string) (string, error)

// Submit calls f(ctx, prompt).
func (f SubmitterFunc) Submit(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Observer receives attempt and outcome notifications from a Client.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveAttempt(err error)
	ObserveOutcome(outcome Outcome, attempts int)
}

type noopObserver struct{}

func (noopObserver) ObserveAttempt(error)        {}
func (noopObserver) ObserveOutcome(Outcome, int) {}

package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	// DefaultMaxAttempts is the attempt budget callers use unless they need another.
	DefaultMaxAttempts = 3

	// DefaultBackoff is the fixed pause between a failed attempt and the next one.
	DefaultBackoff = time.Second

	// UnavailableMessage is returned, without any remote call, when the client
	// has no service handle.
	UnavailableMessage = "AI model is not available. Please check your API key configuration."

	failureMessagePrefix = "Error generating response: "
)

// Outcome is the terminal state of a single Generate call.
type Outcome int

const (
	OutcomeSuccess            Outcome = iota // Text is generated content
	OutcomeServiceUnavailable                // No service handle; zero attempts
	OutcomeExhaustedRetries                  // Every attempt failed
)

// String returns the label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeServiceUnavailable:
		return "service_unavailable"
	case OutcomeExhaustedRetries:
		return "exhausted_retries"
	default:
		return "unknown"
	}
}

// Result is the typed form of a Generate call. Text is always displayable:
// callers that only need a string can ignore every other field.
type Result struct {
	Text     string
	Outcome  Outcome
	Attempts int
	// Err is nil on success. Otherwise it matches ErrServiceUnavailable or
	// ErrExhaustedRetries and wraps the last attempt's error.
	Err error
}

// FailureMessage formats the text returned after the last attempt failed with err.
func FailureMessage(err error) string {
	return failureMessagePrefix + err.Error()
}

// Option customizes a Client.
type Option func(*Client)

// WithBackoff sets the fixed pause between attempts. Negative values mean no pause.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) {
		if d < 0 {
			d = 0
		}
		c.backoff = d
	}
}

// WithSleeper replaces time.Sleep, mainly so tests avoid wall-clock delay.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(c *Client) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// WithObserver registers an Observer for attempts and outcomes.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// Client wraps a Submitter with bounded retry and a fixed backoff.
//
// A Client built with a nil Submitter is in the unavailable state: every call
// returns UnavailableMessage immediately. Client holds no per-call state, so a
// single instance may be shared between goroutines.
type Client struct {
	submitter Submitter
	logger    *slog.Logger
	backoff   time.Duration
	sleep     func(time.Duration)
	observer  Observer
}

// NewClient creates a Client. A nil logger falls back to slog.Default().
func NewClient(logger *slog.Logger, submitter Submitter, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		submitter: submitter,
		logger:    logger,
		backoff:   DefaultBackoff,
		sleep:     time.Sleep,
		observer:  noopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether the client has a service handle.
func (c *Client) Available() bool {
	return c.submitter != nil
}

// Generate returns generated text for prompt, or a human-readable message
// when the service is unavailable or every attempt failed. It never returns
// an error and blocks for the whole attempt/backoff sequence.
func (c *Client) Generate(ctx context.Context, prompt string, maxAttempts int) string {
	return c.GenerateResult(ctx, prompt, maxAttempts).Text
}

// GenerateResult is Generate with the outcome, attempt count and last error exposed.
//
// maxAttempts below 1 is treated as 1. The context is forwarded to the
// Submitter but does not interrupt the retry loop or the backoff pause.
func (c *Client) GenerateResult(ctx context.Context, prompt string, maxAttempts int) Result {
	if c.submitter == nil {
		c.logger.WarnContext(ctx, "Text generation requested without a configured service")
		c.observer.ObserveOutcome(OutcomeServiceUnavailable, 0)
		return Result{
			Text:    UnavailableMessage,
			Outcome: OutcomeServiceUnavailable,
			Err:     ErrServiceUnavailable,
		}
	}

	if maxAttempts < 1 {
		c.logger.WarnContext(ctx, "Invalid max attempts value, using 1",
			"max_attempts", maxAttempts)
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		c.logger.DebugContext(ctx, "Submitting prompt",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"prompt_length", len(prompt))

		text, err := c.submitOnce(ctx, prompt)
		c.observer.ObserveAttempt(err)
		if err == nil {
			c.logger.InfoContext(ctx, "Text generation succeeded",
				"attempt", attempt)
			c.observer.ObserveOutcome(OutcomeSuccess, attempt)
			return Result{Text: text, Outcome: OutcomeSuccess, Attempts: attempt}
		}

		lastErr = err
		c.logger.WarnContext(ctx, "Text generation attempt failed",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"error", err)

		if attempt < maxAttempts {
			c.sleep(c.backoff)
		}
	}

	c.logger.ErrorContext(ctx, "Maximum attempts reached",
		"max_attempts", maxAttempts,
		"error", lastErr)
	c.observer.ObserveOutcome(OutcomeExhaustedRetries, maxAttempts)

	return Result{
		Text:     FailureMessage(lastErr),
		Outcome:  OutcomeExhaustedRetries,
		Attempts: maxAttempts,
		Err:      fmt.Errorf("%w (%d attempts): %w", ErrExhaustedRetries, maxAttempts, lastErr),
	}
}

// submitOnce performs one attempt, turning a panic in the Submitter into an
// ordinary attempt failure.
func (c *Client) submitOnce(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("submitter panic: %v", r)
		}
	}()
	return c.submitter.Submit(ctx, prompt)
}

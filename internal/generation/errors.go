package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrServiceUnavailable is reported when no remote service handle was ever configured
	ErrServiceUnavailable = errors.New("text generation service unavailable")

	// ErrExhaustedRetries is reported when every attempt failed
	ErrExhaustedRetries = errors.New("text generation failed on every attempt")

	// ErrInvalidResponse is returned when the LLM response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the submitter configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

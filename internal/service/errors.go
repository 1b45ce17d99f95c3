package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/phrazzld/classroom-assist/internal/prompt"
)

// ErrInvalidInput indicates a request the service refused before any generation.
// API layer should map this to HTTP 400 Bad Request.
var ErrInvalidInput = errors.New("invalid input")

// ServiceError wraps an error with the service and operation that produced it.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidInput) match prompt validation failures.
func (e *ServiceError) Is(target error) bool {
	return target == ErrInvalidInput && errors.Is(e.Err, prompt.ErrInvalidInput)
}

// wrapAssistantError returns domain sentinels unchanged and wraps everything
// else with operation context.
func wrapAssistantError(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		domain.ErrTrendNotFound,
		domain.ErrUpdateNotFound,
		domain.ErrAlreadyAdopted,
		domain.ErrAlreadyIntegrated,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return &ServiceError{Service: "assistant", Op: op, Err: err}
}

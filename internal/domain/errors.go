package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrTrendNotFound is returned when no trend has the requested ID.
	ErrTrendNotFound = errors.New("trend not found")

	// ErrUpdateNotFound is returned when no content update has the requested ID.
	ErrUpdateNotFound = errors.New("content update not found")

	// ErrAlreadyAdopted is returned when adopting a trend twice.
	ErrAlreadyAdopted = errors.New("trend already adopted")

	// ErrAlreadyIntegrated is returned when integrating a content update twice.
	ErrAlreadyIntegrated = errors.New("content update already integrated")

	// ErrInvalidIntegrationStatus is returned for an unknown integration filter.
	ErrInvalidIntegrationStatus = errors.New("invalid integration status")
)

// Package gemini provides an implementation of the generation.Submitter
// interface that uses Google's Gemini API for text generation.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's generation client to Google's external Gemini
// AI service without exposing the details of that service to the rest of the
// application.
//
// Submitter makes exactly one API call per Submit. Retry, backoff and the
// conversion of failures into displayable text all live in
// generation.Client; this package only translates a prompt into a
// GenerateContent request and the response back into plain text, reporting
// empty or safety-blocked responses as errors.
//
// The package depends on the google.golang.org/genai client library for
// communicating with the Gemini API.
package gemini

// Package generation provides the boundary between the application and
// external AI/LLM services for text generation. The Submitter interface
// abstracts a single remote call (implemented over Gemini in
// internal/platform/gemini), and Client wraps it with bounded, fixed-backoff
// retry and a contract that always yields displayable text: generated content,
// a service-unavailable notice, or a descriptive error message.
package generation

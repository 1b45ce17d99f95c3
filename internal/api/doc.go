// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between dashboard clients
// and the assistant service, translating HTTP concerns to business operations.
//
// Generated text is always returned with 200 OK, including the fallback
// messages produced when the model is unavailable or every attempt failed.
// Only lookup, workflow and validation failures use error status codes.
package api

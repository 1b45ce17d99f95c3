// Package redact scrubs credentials, endpoints and file paths from error text
// before it is logged. Upstream SDK errors often echo the request URL or the
// API key, so every error that reaches a log line passes through here first.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedURLPlaceholder   = "[REDACTED_URL]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedHostPlaceholder  = "[REDACTED_HOST]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	StackTracePlaceholder    = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules run in order; paths must go before hosts so file names are not
// mistaken for domains.
var rules = []rule{
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), StackTracePlaceholder},
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|key|token|secret|bearer)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`https?://[^\s"']+`), RedactedURLPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		RedactedHostPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

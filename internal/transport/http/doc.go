// Package http provides http.RoundTripper decorators for the API client:
// debug-level request/response logging with the API key redacted,
// User-Agent injection and Authorization token injection.
package http

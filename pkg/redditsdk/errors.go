package redditsdk

import (
	"fmt"
	"net/http"
	"strings"
)

// ============================================================================
// Configuration errors
// ============================================================================

// ConfigurationError is returned when the credentials required by the selected grant
// are incomplete. Missing lists every absent field, not just the first one found.
type ConfigurationError struct {
	Grant   string
	Missing []string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"missing credentials for %s grant: %s",
		e.Grant,
		strings.Join(e.Missing, ", "),
	)
}

// ============================================================================
// Upstream errors
// ============================================================================

// AuthError is returned when the token endpoint rejects a grant exchange.
type AuthError struct {
	// StatusCode is the HTTP status returned by the token endpoint
	StatusCode int

	// Body is the raw response body, kept for diagnosis
	Body string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("token request failed with status %d: %s", e.StatusCode, e.Body)
}

// UpstreamError is returned when a resource call returns a non-success status.
// The raw body is preserved so callers can see e.g. insufficient scope messages.
type UpstreamError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d: %s", e.StatusCode, e.Body)
}

// Status returns the HTTP status that should be mirrored to the caller.
// Statuses outside the error range collapse to 502.
func (e *UpstreamError) Status() int {
	return mirrorStatus(e.StatusCode)
}

// Status returns the HTTP status that should be mirrored to the caller.
func (e *AuthError) Status() int {
	return mirrorStatus(e.StatusCode)
}

func mirrorStatus(code int) int {
	if code >= 400 && code <= 599 {
		return code
	}
	return http.StatusBadGateway
}

// Package service implements the feed, thread, mutation and account operations on top
// of the upstream client.
package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Upstream is the subset of the upstream client the services use.
// *redditsdk.Client satisfies it.
type Upstream interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	PostForm(ctx context.Context, path string, form url.Values, out any) error
}

// ValidationError reports malformed caller input. It is always returned before any
// upstream call is made.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// intParam parses an integer query parameter, falling back to def when the value is
// absent or not numeric, and clamps the result to [lo, hi].
func intParam(q url.Values, key string, def, lo, hi int) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		n = def
	}
	return min(max(n, lo), hi)
}

func nowOr(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}

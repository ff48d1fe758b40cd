package explorer

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when the explorer has no such account or transaction
var ErrNotFound = errors.New("explorer: not found")

// RateLimitError represents a rate limit error from the explorer API
type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s (retry after %s)", e.Message, e.RetryAfter)
}

// IsRateLimitError checks if an error is (or wraps) an explorer rate limit error
func IsRateLimitError(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

// StatusError is an unexpected HTTP status from the explorer API
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("explorer API error: status %d, body: %s", e.StatusCode, e.Body)
}

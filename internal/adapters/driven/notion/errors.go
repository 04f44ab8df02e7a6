package notion

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// Notion-specific errors.
var (
	// ErrInvalidWorkspaceID indicates the workspace id is not a UUID.
	ErrInvalidWorkspaceID = fmt.Errorf("%w: notion: invalid workspace id", domain.ErrInvalidInput)

	// ErrInvalidSort indicates an unknown sort order was requested.
	ErrInvalidSort = fmt.Errorf("%w: notion: unknown sort", domain.ErrInvalidInput)
)

// RateLimitError represents a rate limit exceeded error with retry time.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("notion: rate limit exceeded, retry at %s", e.RetryAt.Format(time.RFC3339))
}

// Unwrap lets errors.Is match domain.ErrRateLimited.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// APIError represents a non-2xx Notion API response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap maps well-known statuses onto domain errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return domain.ErrAuthInvalid
	case 404:
		return domain.ErrNotFound
	default:
		return nil
	}
}

// IsUnauthorized checks if the error indicates a rejected session token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsNetwork checks if the error is a connectivity failure rather than an
// API response.
func IsNetwork(err error) bool {
	if errors.Is(err, domain.ErrNetwork) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

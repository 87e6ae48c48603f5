package debox

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by New when no API key was given and the key
// provider returned nothing.
var ErrMissingAPIKey = errors.New("debox: API key must be provided either as an argument or set as environment variable '" + APIKeyEnv + "'")

// APIError is returned for every response whose status is not 200.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("debox: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// IsAPIError reports whether err wraps an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

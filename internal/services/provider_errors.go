package services

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by provider client constructors when the
// credentials for that provider are absent from the environment.
var ErrNotConfigured = errors.New("provider not configured")

// ProviderHTTPError is a non-2xx response from a configured provider.
type ProviderHTTPError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderHTTPError) Error() string {
	return fmt.Sprintf("%s http %d: %s", e.Provider, e.StatusCode, e.Body)
}

// MalformedPayloadError is a 2xx response whose payload could not be parsed
// into the shape the pipeline expects, or whose fields failed validation.
type MalformedPayloadError struct {
	Provider string
	Reason   string
	Err      error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s malformed payload: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s malformed payload: %s", e.Provider, e.Reason)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

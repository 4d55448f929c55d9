package oauth

import (
	"fmt"
	"time"
)

// BindError indicates the local callback port could not be bound, usually
// because another CLI instance is already waiting for a callback.
type BindError struct {
	Port int
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("port %d is already in use. Close any other hs instances and try again", e.Port)
}

func (e *BindError) Unwrap() error { return e.Err }

// ProviderError is returned when HubSpot redirects back with an error
// parameter, for example when the user declines authorization.
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Code
}

// ValidationError indicates the callback carried missing or mismatched
// parameters. A state mismatch is treated as a potential CSRF attempt and
// the received code is never trusted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// TimeoutError indicates no valid callback arrived before the deadline.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("authorization timed out after %.0f seconds. Please try again", e.After.Seconds())
}

// ExchangeError is returned when the token endpoint rejects a code
// exchange or a refresh. Message is extracted from the provider's error
// body when possible.
type ExchangeError struct {
	StatusCode int
	Message    string
}

func (e *ExchangeError) Error() string { return e.Message }

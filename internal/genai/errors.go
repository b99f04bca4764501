package genai

import "errors"

var (
	// ErrProviderUnavailable indicates the backing provider is unreachable.
	ErrProviderUnavailable = errors.New("ai provider unavailable")

	// ErrTimeout indicates the provider call exceeded its timeout.
	ErrTimeout = errors.New("ai request timed out")

	// ErrInvalidOutput indicates the provider response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid ai output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("ai retry attempts exhausted")
)

package llm

import "errors"

var (
	// ErrUnavailable indicates the completion endpoint is unreachable or
	// returned a non-2xx status.
	ErrUnavailable = errors.New("completion endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")

	// ErrRetryExhausted indicates all attempts have been exhausted.
	ErrRetryExhausted = errors.New("completion attempts exhausted")

	// ErrDisabled indicates the model is switched off by configuration.
	ErrDisabled = errors.New("completion model disabled")
)

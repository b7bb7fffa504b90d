package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Flow-control errors (retryable)
const (
	// ErrCodeTimeout indicates an operation exceeded its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeRateLimited indicates a call was rejected by a rate limiter.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrCodeConcurrencyLimit indicates no concurrency slot became available.
	ErrCodeConcurrencyLimit ErrorCode = "CONCURRENCY_LIMIT"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates an argument is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeTypeMismatch indicates a value does not have the type a step expects.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeNotFound indicates a looked-up value does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Terminal errors
const (
	// ErrCodeRetriesExhausted indicates every retry attempt failed.
	ErrCodeRetriesExhausted ErrorCode = "RETRIES_EXHAUSTED"
	// ErrCodeUnknown wraps a failure value that was not an error.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:          true,
	ErrCodeRateLimited:      true,
	ErrCodeConcurrencyLimit: true,
	ErrCodeUnknown:          true,
	ErrCodeInternal:         false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

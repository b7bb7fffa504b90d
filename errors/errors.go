package errors

import (
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// Timeout creates an AppError for an operation that exceeded its deadline.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("%s timed out", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// RateLimited creates an AppError for a call rejected by a rate limiter.
func RateLimited(limiter string) *AppError {
	return &AppError{
		Code: ErrCodeRateLimited, Message: "rate limit exceeded",
		Retryable: true,
		Details:   map[string]any{"limiter": limiter},
	}
}

// ConcurrencyLimit creates an AppError for a call that could not obtain a
// concurrency slot for key.
func ConcurrencyLimit(limiter, key string) *AppError {
	return &AppError{
		Code: ErrCodeConcurrencyLimit, Message: fmt.Sprintf("no concurrency slot available for %q", key),
		Retryable: true,
		Details:   map[string]any{"limiter": limiter, "key": key},
	}
}

// InvalidInput creates an AppError for an invalid argument.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates an AppError for struct or argument validation failures.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// TypeMismatch creates an AppError for a value whose type does not match the
// type expected by step.
func TypeMismatch(step, expected string, got any) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("%s expects %s, got %T", step, expected, got),
		Retryable: false,
		Details:   map[string]any{"step": step, "expected": expected, "got": fmt.Sprintf("%T", got)},
	}
}

// NotFound creates an AppError for a missing value.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s not found", resource),
		Retryable: false, Details: details,
	}
}

// RetriesExhausted creates an AppError reporting that every attempt failed.
// The last attempt's error is kept as the cause.
func RetriesExhausted(attempts int, last error) *AppError {
	return &AppError{
		Code: ErrCodeRetriesExhausted, Message: fmt.Sprintf("gave up after %d attempts", attempts),
		Retryable: false,
		Details:   map[string]any{"attempts": attempts},
		Cause:     last,
	}
}

// Internal creates an AppError for an unexpected internal failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Retryable: false, Cause: cause,
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
)

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsRetryable reports whether err is worth retrying. Errors that are not
// AppErrors are considered retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Retryable
	}
	return true
}

// Wrap returns err as an AppError. AppErrors found in the chain are returned
// unchanged; anything else becomes an internal error with err as the cause.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}

// FormatResourceError creates a NOT_FOUND error for a resource identified by
// an id of any printable type.
func FormatResourceError(resource string, id any) *AppError {
	return NotFound(resource, fmt.Sprint(id))
}

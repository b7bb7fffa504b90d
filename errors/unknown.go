package errors

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Unknown wraps a failure value that is not an error. The message is the JSON
// encoding of data, or its %v form when it cannot be encoded.
func Unknown(data any) *AppError {
	msg, err := json.Marshal(data)
	if err != nil {
		msg = []byte(fmt.Sprintf("%v", data))
	}
	return &AppError{
		Code:      ErrCodeUnknown,
		Message:   string(msg),
		Retryable: IsRetryableCode(ErrCodeUnknown),
		Details:   map[string]any{"data": data},
	}
}

// EnsureError returns v when it already is an error and wraps it with Unknown
// otherwise. A nil v yields nil.
func EnsureError(v any) error {
	if v == nil {
		return nil
	}
	if err, ok := v.(error); ok {
		return err
	}
	return Unknown(v)
}

// CanFail runs fn and converts a panic into an error instead of letting it
// unwind the caller.
//
//	v, err := errors.CanFail(func() int { return parse(data) })
func CanFail[T any](fn func() T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = EnsureError(r)
		}
	}()
	return fn(), nil
}

// CanFailE is CanFail for functions that already report errors.
func CanFailE[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = EnsureError(r)
		}
	}()
	return fn()
}

// Must returns v, panicking with err when err is not nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

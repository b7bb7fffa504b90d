// Package errors provides the structured error type used across fnkit.
//
// An AppError carries a machine-readable code, a human-readable message, a
// retryable flag and optional details. Helpers convert arbitrary values and
// recovered panics into errors so callers can treat every failure uniformly.
package errors

package domain

import "errors"

type ErrorCode string

const (
	CodeNotFound              ErrorCode = "NOT_FOUND"
	CodeValidationFailed      ErrorCode = "VALIDATION_FAILED"
	CodeConflict              ErrorCode = "CONFLICT"
	CodeInfrastructureFailure ErrorCode = "INFRASTRUCTURE_FAILURE"
)

// OperationResult is the envelope every service operation returns.
// Either Success is true and Data holds the payload, or Success is false
// and ErrorCode and Message describe the failure.
type OperationResult[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data,omitempty"`
	Message   string    `json:"message,omitempty"`
	ErrorCode ErrorCode `json:"errorCode,omitempty"`
}

func Ok[T any](data T) OperationResult[T] {
	return OperationResult[T]{Success: true, Data: data}
}

func Fail[T any](code ErrorCode, message string) OperationResult[T] {
	if message == "" {
		message = string(code)
	}

	return OperationResult[T]{Success: false, ErrorCode: code, Message: message}
}

func FromError[T any](err error) OperationResult[T] {
	if err == nil {
		var zero T
		return Ok(zero)
	}

	return Fail[T](CodeOf(err), err.Error())
}

// CodeOf classifies err. Anything that is not a known business failure is
// reported as an infrastructure failure.
func CodeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrValidation):
		return CodeValidationFailed
	case errors.Is(err, ErrConflict):
		return CodeConflict
	default:
		return CodeInfrastructureFailure
	}
}

package failure

import (
	"errors"
)

// Code classifies a Failure.
type Code int

const (
	CodeInternal Code = iota
	CodeNotFound
	CodeValidation
	CodeScheduling
	CodeStore
)

var codeNames = map[Code]string{
	CodeInternal:   "internal",
	CodeNotFound:   "not_found",
	CodeValidation: "validation",
	CodeScheduling: "scheduling",
	CodeStore:      "store",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}

	return codeNames[CodeInternal]
}

// Failure is a classified error carried from the store and services up to the caller.
type Failure struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	err     error
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.err
}

// NotFound returns a new Failure for a missing entity.
func NotFound(message string) error {
	return &Failure{
		Code:    CodeNotFound,
		Message: message,
	}
}

// Validation returns a new Failure for input rejected before it reaches the store.
func Validation(message string) error {
	return &Failure{
		Code:    CodeValidation,
		Message: message,
	}
}

// ValidationFromError returns a validation Failure with message derived from err.
func ValidationFromError(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeValidation,
			Message: err.Error(),
			err:     err,
		}
	}

	return nil
}

// Scheduling wraps a reminder scheduling error.
func Scheduling(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeScheduling,
			Message: err.Error(),
			err:     err,
		}
	}

	return nil
}

// Store wraps a persistence error.
func Store(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeStore,
			Message: err.Error(),
			err:     err,
		}
	}

	return nil
}

// Internal wraps an unexpected error.
func Internal(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeInternal,
			Message: err.Error(),
			err:     err,
		}
	}

	return nil
}

// GetCode returns the code of the first Failure in the chain of err.
func GetCode(err error) Code {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeInternal
}

// Is reports whether err carries a Failure with the given code.
func Is(err error, code Code) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}

package errors

import (
	"errors"
	"fmt"
)

// Exit codes reported by command line tools.
const (
	ExitFailure = 1
	ExitInvalid = 2
)

// Error represents a typed application error that knows how a command should
// exit when it surfaces.
type Error struct {
	Code     string `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
	ExitCode int    `json:"-" yaml:"-"`
	Err      error  `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code, so errors.Is(err, ErrValidation)
// holds for clones and wraps of ErrValidation.
func (e *Error) Is(target error) bool {
	var other *Error
	if e == nil || !errors.As(target, &other) || other == nil {
		return false
	}
	return e.Code == other.Code
}

// New creates a new Error instance.
func New(code string, exitCode int, message string) *Error {
	return &Error{Code: code, ExitCode: exitCode, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, exitCode int, message string) *Error {
	return &Error{Code: code, ExitCode: exitCode, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrValidation      = New("VALIDATION_ERROR", ExitInvalid, "validation failed")
	ErrInvalidDocument = New("INVALID_DOCUMENT", ExitInvalid, "invalid document")
	ErrUsage           = New("USAGE", ExitInvalid, "invalid usage")
	ErrInternal        = New("INTERNAL_ERROR", ExitFailure, "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.ExitCode, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Validation wraps err as a validation failure with message.
func Validation(err error, message string) *Error {
	return Wrap(err, ErrValidation.Code, ErrValidation.ExitCode, message)
}

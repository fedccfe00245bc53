package command

import (
	"errors"
	"fmt"
)

// Code classifies a failed command.
type Code string

const (
	InvalidFormat      Code = "InvalidFormat"
	UnknownCommand     Code = "UnknownCommand"
	MissingParameter   Code = "MissingParameter"
	InvalidParameter   Code = "InvalidParameter"
	NotFound           Code = "NotFound"
	PreconditionFailed Code = "PreconditionFailed"
	AlreadyRecording   Code = "AlreadyRecording"
	NotRecording       Code = "NotRecording"
	HostError          Code = "HostError"
)

// Error is a command failure carrying its taxonomy code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies err as a HostError unless it already carries a code.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		return err
	}
	return &Error{Code: HostError, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf returns the code carried by err, or HostError for foreign errors.
func CodeOf(err error) Code {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return HostError
}

// IsCode reports whether err carries code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

func Missing(name string) *Error {
	return Errorf(MissingParameter, "Missing required parameter: %s", name)
}

package service

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to classify an error returned by a Service.
var (
	// ErrNotFound means a task number does not address a task.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCommand means malformed input: bad arguments, unknown status.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrIO means the data file could not be read or written.
	ErrIO = errors.New("io error")

	// ErrParse means the data file exists but its content is corrupt.
	ErrParse = errors.New("parse error")
)

// Error carries an error kind, a user-facing message and an optional cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NotFound reports a task number outside 1..n.
func NotFound(num int) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf("no task exists at number %d", num)}
}

// Invalid reports malformed input.
func Invalid(format string, args ...any) error {
	return &Error{Kind: ErrInvalidCommand, Msg: fmt.Sprintf(format, args...)}
}

// IOFailure reports a failed file operation on path.
func IOFailure(op, path string, err error) error {
	return &Error{Kind: ErrIO, Msg: fmt.Sprintf("failed to %s %s", op, path), Err: err}
}

// Corrupt reports undecodable content in the data file at path.
func Corrupt(path string, err error) error {
	return &Error{Kind: ErrParse, Msg: fmt.Sprintf("corrupt task file %s", path), Err: err}
}

package dgerrors

import (
	"errors"
	"fmt"
)

// Error is the error type returned by the Dicoogle client. It carries a
// machine-readable code from the client's error taxonomy, the HTTP status
// code when the server produced one, and optional hint/details for
// presentation layers.
type Error struct {
	cause          error
	code           Code
	message        string
	httpStatusCode int
	component      string
	hint           string
	details        map[string]string
}

// New creates a new Error with the given message. The message can be
// formatted with fmt.Sprintf-style arguments.
func New(format string, a ...any) *Error {
	return &Error{
		code:    CodeUnknownError,
		message: fmt.Sprintf(format, a...),
		details: map[string]string{},
	}
}

// Wrap creates a new Error that wraps an existing error, preserving it for
// errors.Is/errors.As chains.
func Wrap(err error, format string, a ...any) *Error {
	e := New(format, a...)
	e.cause = err
	return e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

func (e *Error) WithHTTPStatusCode(statusCode int) *Error {
	e.httpStatusCode = statusCode
	return e
}

func (e *Error) WithComponent(component string) *Error {
	e.component = component
	return e
}

func (e *Error) WithHint(format string, a ...any) *Error {
	e.hint = fmt.Sprintf(format, a...)
	return e
}

func (e *Error) WithDetail(key, value string) *Error {
	e.details[key] = value
	return e
}

func (e *Error) WithDetails(details map[string]string) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

func (e *Error) Code() Code                 { return e.code }
func (e *Error) HTTPStatusCode() int        { return e.httpStatusCode }
func (e *Error) Component() string          { return e.component }
func (e *Error) Hint() string               { return e.hint }
func (e *Error) Details() map[string]string { return e.details }

// ErrorCode extracts the taxonomy code from any error. Errors that did not
// come out of this package report CodeUnknownError.
func ErrorCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknownError
}

// IsCode reports whether the error carries the given taxonomy code.
func IsCode(err error, code Code) bool {
	return ErrorCode(err) == code
}

// StatusCode extracts the HTTP status code from an error, or 0 when the
// error did not originate from a server response.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.httpStatusCode
	}
	return 0
}

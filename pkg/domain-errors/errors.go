// Package domainerrors provides coded errors for the registry domain.
//
// Stores return sentinel errors (pkg/platform/sentinel) for infrastructure
// facts; services translate those into coded domain errors so transports can
// map them onto wire-level responses without string matching.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for transport mapping and assertions.
type Code string

const (
	// CodeInvalidInput rejects an empty or malformed required field.
	CodeInvalidInput Code = "invalid_input"
	// CodeAlreadyExists rejects an active skill name collision on add.
	CodeAlreadyExists Code = "already_exists"
	// CodeNotFound means the referenced profile or skill is not currently active.
	CodeNotFound Code = "not_found"
	// CodeForbidden rejects a self-verification attempt.
	CodeForbidden Code = "forbidden"
	// CodeAlreadyVerified rejects a duplicate verification by the same principal.
	CodeAlreadyVerified Code = "already_verified"
	// CodeUnauthorized covers missing or invalid caller credentials.
	CodeUnauthorized Code = "unauthorized"
	// CodeInternal covers infrastructure failures not attributable to the caller.
	CodeInternal Code = "internal"
)

// Error carries a code, a caller-safe message, and an optional cause.
type Error struct {
	code  Code
	msg   string
	cause error
}

func New(code Code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(cause error, code Code, msg string) *Error {
	return &Error{code: code, msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Code() Code { return e.code }

// Message returns the caller-safe message without the cause chain.
func (e *Error) Message() string { return e.msg }

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.code == code {
			return true
		}
		err = de.cause
		de = nil
	}
	return false
}

// Is aliases HasCode for call-site readability in handlers.
func Is(err error, code Code) bool { return HasCode(err, code) }

// CodeOf returns the outermost code carried by err, or CodeInternal when err
// carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return CodeInternal
}

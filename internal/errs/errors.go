// Package errs defines the coded error taxonomy used across the tenant backend.
package errs

import (
	"errors"
	"fmt"
)

// Error codes returned by services and mapped to HTTP statuses at the edge.
const (
	EInvalid      = "invalid"       // malformed or missing input
	EConflict     = "conflict"      // uniqueness violation
	ENotFound     = "not found"     // referenced entity absent
	EForbidden    = "forbidden"     // authenticated but not entitled
	ETokenInvalid = "token invalid" // signature, structure, or expiry failure
	EInternal     = "internal"      // storage or other unexpected failure
)

// Error carries a machine-readable code alongside a human-readable message.
type Error struct {
	Code string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Msg != "" {
			return fmt.Sprintf("%s: %v", e.Msg, e.Err)
		}
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid returns an EInvalid error
func Invalid(format string, args ...interface{}) *Error {
	return &Error{Code: EInvalid, Msg: fmt.Sprintf(format, args...)}
}

// Conflict returns an EConflict error
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Code: EConflict, Msg: fmt.Sprintf(format, args...)}
}

// NotFound returns an ENotFound error
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Code: ENotFound, Msg: fmt.Sprintf(format, args...)}
}

// Forbidden returns an EForbidden error
func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Code: EForbidden, Msg: fmt.Sprintf(format, args...)}
}

// TokenInvalid returns an ETokenInvalid error wrapping the parse failure
func TokenInvalid(msg string, err error) *Error {
	return &Error{Code: ETokenInvalid, Msg: msg, Err: err}
}

// Internal wraps a storage or other unexpected failure
func Internal(msg string, err error) *Error {
	return &Error{Code: EInternal, Msg: msg, Err: err}
}

// ErrorCode returns the code of the first coded error in err's chain.
// Uncoded errors classify as EInternal; nil returns the empty string.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EInternal
}

// ErrorMessage returns the message of the first coded error in err's chain
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

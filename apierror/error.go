package apierror

import (
	"errors"
	"fmt"
)

// Error is a single occurrence of a declared variant. It is immutable after
// construction and safe to share between goroutines.
type Error struct {
	desc    *Descriptor
	details any
	cause   error
}

// ErrorOption configures an occurrence at raise time.
type ErrorOption func(*Error)

// Details attaches a structured payload to the occurrence. The payload is
// serialized verbatim into the response body's "details" field and is
// available to message templates.
func Details(v any) ErrorOption {
	return func(e *Error) {
		e.details = v
	}
}

// Cause records the underlying error. It is surfaced through Unwrap for
// errors.Is/As chains and diagnostics, never through the wire response.
func Cause(err error) ErrorOption {
	return func(e *Error) {
		e.cause = err
	}
}

// Descriptor returns the variant this occurrence was raised from.
func (e *Error) Descriptor() *Descriptor { return e.desc }

// Code returns the variant's stable code.
func (e *Error) Code() string { return e.desc.code }

// Status returns the variant's HTTP status.
func (e *Error) Status() int { return e.desc.status }

// Message returns the variant's message template.
func (e *Error) Message() string { return e.desc.message }

// Details returns the structured payload attached at raise time, or nil.
func (e *Error) Details() any { return e.details }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.desc.code, e.desc.message, e.cause)
	}
	return e.desc.code + ": " + e.desc.message
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the occurrence's descriptor or another
// occurrence of the same descriptor. This makes errors.Is(err, ErrNotFound)
// work with package-level descriptor variables.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Descriptor:
		return e.desc == t
	case *Error:
		return e.desc == t.desc
	default:
		return false
	}
}

// From extracts the occurrence from an error chain. It returns nil, false
// when the chain contains no taxonomy error.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	var d *Descriptor
	if errors.As(err, &d) {
		return d.New(), true
	}
	return nil, false
}

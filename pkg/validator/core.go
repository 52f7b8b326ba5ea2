package validator

import (
	"errors"
	"strings"
)

// ValidationError describes a single failed rule: which field broke and a
// human-readable reason suitable for wire details.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors aggregates every failed rule from one Apply call. It
// implements the error interface, so a multi-field check bubbles up as a
// single error value.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	switch len(ve) {
	case 0:
		return "validation failed"
	case 1:
		return ve[0].Message
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// Has reports whether any failure concerns the given field.
func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the distinct failing fields in failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, e := range ve {
		if !seen[e.Field] {
			fields = append(fields, e.Field)
			seen[e.Field] = true
		}
	}
	return fields
}

// Rule pairs a check with the error reported when the check fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns the collected failures as a
// ValidationErrors value, or nil when all rules pass.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			failed = append(failed, rule.Error)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// Extract unwraps ValidationErrors from an error chain, or nil when the
// error carries none.
func Extract(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// First returns the first failure in the chain, or nil. Handy when a wire
// body reports one field at a time.
func First(err error) *ValidationError {
	ve := Extract(err)
	if len(ve) == 0 {
		return nil
	}
	return &ve[0]
}

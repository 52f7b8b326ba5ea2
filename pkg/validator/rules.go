package validator

import (
	"fmt"
	"net/mail"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not be empty",
		},
	}
}

// MinLen validates that a string is at least min bytes long.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// MaxLen validates that a string is at most max bytes long.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// ValidEmail validates a bare address form like user@example.com. Display
// names and comments are rejected even though net/mail accepts them.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" {
				return false
			}
			addr, err := mail.ParseAddress(trimmed)
			if err != nil || addr.Address != trimmed {
				return false
			}
			local, domain, ok := strings.Cut(addr.Address, "@")
			return ok && local != "" && strings.Contains(domain, ".")
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

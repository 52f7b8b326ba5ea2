package logger

import (
	"log/slog"
	"strconv"
)

// Attribute helpers keep log keys consistent across the module. Helpers
// that take optional data return the zero Attr when the data is missing;
// slog's built-in handlers drop zero attributes from output.

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the "error" key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors records every non-nil error under the "errors" group, numbered
// in the order given.
func Errors(errs ...error) slog.Attr {
	var group []slog.Attr
	for _, err := range errs {
		if err == nil {
			continue
		}
		group = append(group, slog.Any(strconv.Itoa(len(group)), err))
	}
	if group == nil {
		return slog.Attr{}
	}
	return Group("errors", group...)
}

// ErrorCode records a stable error code under the "error_code" key.
func ErrorCode(code string) slog.Attr {
	return optional("error_code", code)
}

// Taxonomy records the owning taxonomy name under the "taxonomy" key.
func Taxonomy(name string) slog.Attr {
	return optional("taxonomy", name)
}

// Field records the field a patch or validation failure points at.
func Field(name string) slog.Attr {
	return optional("field", name)
}

// Status records an HTTP status code under the "status_code" key.
func Status(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// RequestID records the request identifier under the "request_id" key.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Component names the package or subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func optional(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}

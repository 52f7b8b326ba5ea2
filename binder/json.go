package binder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxBodySize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxBodySize = 1 << 20

// jsonConfig holds configuration for the JSON binder.
type jsonConfig struct {
	maxBodySize        int64
	allowUnknownFields bool
	optional           bool
}

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

// WithMaxBodySize overrides the request body size limit in bytes.
func WithMaxBodySize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// WithUnknownFields accepts request bodies carrying keys the target struct
// does not declare. By default unknown keys are rejected.
func WithUnknownFields() JSONOption {
	return func(c *jsonConfig) {
		c.allowUnknownFields = true
	}
}

// Optional makes the binder skip requests that carry no body instead of
// failing on the missing content type.
func Optional() JSONOption {
	return func(c *jsonConfig) {
		c.optional = true
	}
}

// JSON creates a JSON body binder. It requires an application/json content
// type, enforces a body size limit, and rejects unknown keys and trailing
// data unless configured otherwise.
//
// Example:
//
//	handler := apikit.HandlerFunc[apikit.Context, CreateUserRequest](
//		func(ctx apikit.Context, req CreateUserRequest) apikit.Response {
//			return apikit.JSON(user)
//		},
//	)
//
//	mux.HandleFunc("POST /users", apikit.Wrap(handler,
//		apikit.WithBinder(binder.JSON()),
//	))
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := jsonConfig{maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			if cfg.optional && r.ContentLength <= 0 {
				return ErrBinderNotApplicable
			}
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		if mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxBodySize+1))
		if err != nil {
			return fmt.Errorf("%w: reading request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > cfg.maxBodySize {
			return fmt.Errorf("%w: request body exceeds %d bytes", ErrFailedToParseJSON, cfg.maxBodySize)
		}
		if len(bytes.TrimSpace(body)) == 0 {
			if cfg.optional {
				return ErrBinderNotApplicable
			}
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if !cfg.allowUnknownFields {
			decoder.DisallowUnknownFields()
		}
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		// Reject trailing data after the first JSON value.
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}

		return nil
	}
}

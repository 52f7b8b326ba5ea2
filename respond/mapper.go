package respond

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/apikit/apierror"
	"github.com/dmitrymomot/apikit/pkg/logger"
	"github.com/dmitrymomot/apikit/pkg/requestid"
)

// Mapper resolves errors into wire responses. Response is pure and
// deterministic; Write adds the side effects (the HTTP write and one
// structured diagnostic per error). A mapper is immutable after
// construction and safe for concurrent use; services typically create one
// in main and share it across handlers.
type Mapper struct {
	log       *slog.Logger
	templates TemplateFunc
	fallback  *apierror.Descriptor
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// WithLogger sets the logger used for diagnostics. Defaults to
// slog.Default.
func WithLogger(log *slog.Logger) MapperOption {
	return func(m *Mapper) {
		if log != nil {
			m.log = log
		}
	}
}

// WithTemplates installs a message template engine, applied to the
// descriptor's message with the occurrence details. The function must be
// pure: Response stays deterministic only if the engine is. See
// Interpolate for the built-in engine.
func WithTemplates(fn TemplateFunc) MapperOption {
	return func(m *Mapper) {
		m.templates = fn
	}
}

// WithFallback replaces the built-in internal_error descriptor used for
// errors outside any taxonomy.
func WithFallback(d *apierror.Descriptor) MapperOption {
	return func(m *Mapper) {
		if d != nil {
			m.fallback = d
		}
	}
}

// NewMapper creates a response mapper.
func NewMapper(opts ...MapperOption) *Mapper {
	m := &Mapper{
		log:      slog.Default(),
		fallback: ErrInternal,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Response projects an occurrence onto its wire response. It is total and
// pure: equal errors produce equal responses, nothing is written or logged.
// A nil occurrence resolves to the fallback variant.
func (m *Mapper) Response(e *apierror.Error) (int, Body) {
	if e == nil {
		e = m.fallback.New()
	}
	message := e.Message()
	if m.templates != nil {
		message = m.templates(message, e.Details())
	}
	return e.Status(), Body{
		Code:    e.Code(),
		Message: message,
		Details: e.Details(),
	}
}

// Resolve maps an arbitrary error onto an occurrence: taxonomy errors pass
// through (unwrapping as needed), anything else becomes a fallback
// occurrence with the original error as cause. The fallback body carries no
// details, so internal faults never leak through the wire.
func (m *Mapper) Resolve(err error) *apierror.Error {
	if e, ok := apierror.From(err); ok {
		return e
	}
	return m.fallback.New(apierror.Cause(err))
}

// Write resolves err and writes the wire response. It emits exactly one
// diagnostic per call: Warn for client errors, Error for server errors,
// carrying the code, status, method, path, and request correlation ID.
// Logging is fire-and-forget and never affects the response.
func (m *Mapper) Write(w http.ResponseWriter, r *http.Request, err error) {
	e := m.Resolve(err)
	status, body := m.Response(e)
	m.logError(r, status, body.Code, err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		m.log.LogAttrs(requestContext(r), slog.LevelError, "failed to encode error response",
			logger.Error(encErr),
			logger.ErrorCode(body.Code),
			logger.Component("respond"),
		)
	}
}

func (m *Mapper) logError(r *http.Request, status int, code string, err error) {
	ctx := requestContext(r)
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	var method, path string
	if r != nil {
		method = r.Method
		path = r.URL.Path
	}

	m.log.LogAttrs(ctx, level, "request error",
		logger.RequestID(requestid.FromContext(ctx)),
		logger.Error(err),
		logger.ErrorCode(code),
		logger.Status(status),
		slog.String("method", method),
		slog.String("path", path),
		logger.Component("respond"),
	)
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the handler encoding.
type Format string

const (
	// FormatJSON emits one JSON object per record, for log aggregation.
	FormatJSON Format = "json"
	// FormatText emits key=value lines, for terminals.
	FormatText Format = "text"
)

// settings accumulates option values until New builds the handler chain.
type settings struct {
	level       slog.Level
	format      Format
	output      io.Writer
	attrs       []slog.Attr
	handlerOpts *slog.HandlerOptions
	extractors  []ContextExtractor
}

// Option configures New.
type Option func(*settings)

// New builds a slog.Logger from the options. Defaults favor production:
// JSON encoding at info level on stdout. Registered context extractors
// decorate the handler so request-scoped attributes land on each record.
func New(opts ...Option) *slog.Logger {
	s := settings{level: slog.LevelInfo, format: FormatJSON}
	for _, opt := range opts {
		opt(&s)
	}

	out := s.output
	if out == nil {
		out = os.Stdout
	}
	hopts := s.handlerOpts
	if hopts == nil {
		hopts = &slog.HandlerOptions{Level: s.level}
	}

	var h slog.Handler
	switch s.format {
	case FormatText:
		h = slog.NewTextHandler(out, hopts)
	default:
		h = slog.NewJSONHandler(out, hopts)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}
	return slog.New(newContextHandler(h, s.extractors))
}

// SetAsDefault installs l as the process-wide slog default so package
// level slog calls share the same handler chain.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// WithLevel sets the minimum record level.
func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat selects the handler encoding. Unknown formats panic so a
// misconfigured binary fails at startup instead of logging garbage.
func WithFormat(f Format) Option {
	return func(s *settings) {
		switch f {
		case FormatJSON, FormatText:
			s.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithTextFormatter selects the text encoding.
func WithTextFormatter() Option {
	return func(s *settings) { s.format = FormatText }
}

// WithJSONFormatter selects the JSON encoding.
func WithJSONFormatter() Option {
	return func(s *settings) { s.format = FormatJSON }
}

// WithOutput redirects records to w. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithHandlerOptions passes opts through to the slog handler verbatim,
// replacing the level set by WithLevel. Nil is ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(s *settings) {
		if opts != nil {
			s.handlerOpts = opts
		}
	}
}

// WithAttr attaches static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) { s.attrs = append(s.attrs, attrs...) }
}

// WithContextExtractors registers extractors that copy request-scoped
// values from the context onto each record. Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(s *settings) {
		for _, extract := range extractors {
			if extract != nil {
				s.extractors = append(s.extractors, extract)
			}
		}
	}
}

// WithContextValue registers an extractor for a single context key,
// logged under name whenever the context carries a non-nil value.
func WithContextValue(name string, key any) Option {
	return func(s *settings) {
		if name == "" || key == nil {
			return
		}
		s.extractors = append(s.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithDevelopment applies the development preset: debug level, text
// encoding, and service/env attributes on every record.
func WithDevelopment(service string) Option {
	return preset(service, "development", slog.LevelDebug, FormatText)
}

// WithProduction applies the production preset: info level, JSON
// encoding, and service/env attributes on every record.
func WithProduction(service string) Option {
	return preset(service, "production", slog.LevelInfo, FormatJSON)
}

// WithEnvironment picks the preset matching env. Production and staging
// names map to the production preset; anything else counts as
// development.
func WithEnvironment(env, service string) Option {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod", "staging", "stage":
		return WithProduction(service)
	default:
		return WithDevelopment(service)
	}
}

func preset(service, env string, level slog.Level, format Format) Option {
	return func(s *settings) {
		if service == "" {
			return
		}
		s.level = level
		s.format = format
		s.attrs = append(s.attrs,
			slog.String("service", service),
			slog.String("env", env),
		)
	}
}

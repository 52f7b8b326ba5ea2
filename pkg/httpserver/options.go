package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures New. Options validate their arguments eagerly and
// panic on misuse, so a broken server setup fails at startup.
type Option func(*config)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: WithAddr requires a non-empty address")
	}
	return func(c *config) { c.addr = addr }
}

// WithReadTimeout bounds reading of the entire request.
func WithReadTimeout(d time.Duration) Option {
	mustPositive("WithReadTimeout", d)
	return func(c *config) { c.readTimeout = d }
}

// WithWriteTimeout bounds writing of the response.
func WithWriteTimeout(d time.Duration) Option {
	mustPositive("WithWriteTimeout", d)
	return func(c *config) { c.writeTimeout = d }
}

// WithIdleTimeout bounds the wait for the next request on a kept-alive
// connection.
func WithIdleTimeout(d time.Duration) Option {
	mustPositive("WithIdleTimeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout bounds graceful shutdown before in-flight requests
// are abandoned.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("WithShutdownTimeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer runs the given http.Server instead of a fresh one. Run
// fills in the handler and any unset address or timeout fields; values
// already present on the instance win over package defaults.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver: WithServer requires a non-nil server")
	}
	return func(c *config) { c.server = srv }
}

// WithLogger sets the logger for lifecycle events and hooks. Nil leaves
// the discard logger in place.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook registers a callback invoked right before the server
// starts accepting connections.
func WithStartHook(h func(*slog.Logger)) Option {
	mustHook("WithStartHook", h)
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook registers a callback invoked after the server has
// stopped.
func WithStopHook(h func(*slog.Logger)) Option {
	mustHook("WithStopHook", h)
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}

func mustPositive(opt string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + opt + " requires a positive duration")
	}
}

func mustHook(opt string, h func(*slog.Logger)) {
	if h == nil {
		panic("httpserver: " + opt + " requires a non-nil hook")
	}
}

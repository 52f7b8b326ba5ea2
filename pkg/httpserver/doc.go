// Package httpserver runs an http.Server with graceful shutdown wired to
// signals and context cancellation, environment-driven configuration,
// JSON health probes, and slog lifecycle logging.
//
// A service needs three calls:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, the process receives an
// interrupt or TERM, or the listener fails, and drains in-flight
// requests before returning. Listen failures come back wrapped with
// ErrStart, shutdown failures with ErrShutdown.
//
// HealthCheckHandler serves the conventional probe endpoints: mounted
// bare it answers liveness, and mounted with dependency checks (such as
// pg.Healthcheck) it answers readiness with 503 when a check fails.
// WithStartHook and WithStopHook run side effects around the lifecycle,
// useful for registering with service discovery or flushing buffers.
package httpserver

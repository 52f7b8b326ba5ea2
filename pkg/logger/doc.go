// Package logger builds configured slog loggers and keeps attribute
// naming consistent across the module.
//
// New applies functional options and returns a *slog.Logger. Without
// options the result is production-shaped: JSON records at info level on
// stdout. WithDevelopment and WithProduction switch the whole preset at
// once; the remaining options tune level, format, output, and static
// attributes individually.
//
// # Context extraction
//
// Middleware in this module stores request-scoped values (request ID,
// client IP) in the request context. A ContextExtractor copies such a
// value onto a log record, and extractors registered through
// WithContextExtractors run on every record logged with a *Context
// method:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "users-api"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        clientip.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
// Extraction happens inside the handler, so one logger instance serves
// all requests; there is no per-request logger construction.
//
// # Attribute helpers
//
// Error, ErrorCode, Status, Taxonomy, Field, and RequestID wrap the log
// keys the rest of the module emits. Helpers return the zero Attr when
// given nothing to record, so calls like
//
//	log.InfoContext(ctx, "patch applied", logger.Error(err))
//
// need no nil guard.
package logger

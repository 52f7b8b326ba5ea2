package pg

import "context"

// logger is the subset of *slog.Logger methods this package calls.
// Migrate accepts it instead of the concrete type so tests can hand in
// any structured logger.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

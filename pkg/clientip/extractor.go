package clientip

import (
	"context"
	"log/slog"
)

// LoggerExtractor adapts FromContext for logger.WithContextExtractors,
// stamping the caller address onto records logged inside a request.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		ip := FromContext(ctx)
		if ip == "" {
			return slog.Attr{}, false
		}
		return slog.String("client_ip", ip), true
	}
}

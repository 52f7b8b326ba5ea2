package requestid

import (
	"context"
	"log/slog"
)

// LoggerExtractor adapts FromContext for logger.WithContextExtractors,
// so records logged inside a request carry its ID automatically.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}

package apikit

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/apikit/apierror"
	"github.com/dmitrymomot/apikit/pkg/logger"
	"github.com/dmitrymomot/apikit/pkg/requestid"
	"github.com/dmitrymomot/apikit/respond"
)

// Recoverer converts handler panics into internal error responses.
// The panic value and stack trace are logged at Error level, then the
// mapper writes the standard internal_error body.
//
// http.ErrAbortHandler panics are re-raised so net/http can abort the
// connection as usual.
//
//	r := chi.NewRouter()
//	r.Use(apikit.Recoverer(log, mapper))
func Recoverer(log *slog.Logger, m *respond.Mapper) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	if m == nil {
		m = respond.NewMapper()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rv := recover()
				if rv == nil {
					return
				}
				if rv == http.ErrAbortHandler {
					panic(rv)
				}

				err, ok := rv.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rv)
				}

				log.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					logger.RequestID(requestid.FromContext(r.Context())),
					logger.Error(err),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				m.Write(w, r, respond.ErrInternal.New(apierror.Cause(err)))
			}()

			next.ServeHTTP(w, r)
		})
	}
}

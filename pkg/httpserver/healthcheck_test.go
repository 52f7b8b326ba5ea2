package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/pkg/httpserver"
	"github.com/dmitrymomot/apikit/pkg/logger"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	t.Run("liveness without checks", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

		httpserver.HealthCheckHandler(nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("readiness with passing checks", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

		handler := httpserver.HealthCheckHandler(nil,
			func(ctx context.Context) error { return nil },
			func(ctx context.Context) error { return nil },
		)
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("readiness failure answers 503 and logs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

		handler := httpserver.HealthCheckHandler(log,
			func(ctx context.Context) error { return errors.New("db unreachable") },
		)
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
		assert.Contains(t, buf.String(), "readiness check failed")
		assert.Contains(t, buf.String(), "db unreachable")
	})

	t.Run("checks receive the request context", func(t *testing.T) {
		t.Parallel()
		type ctxKey struct{}

		var got any
		handler := httpserver.HealthCheckHandler(nil, func(ctx context.Context) error {
			got = ctx.Value(ctxKey{})
			return nil
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "probe"))
		handler.ServeHTTP(rec, req)

		require.Equal(t, "probe", got)
	})
}

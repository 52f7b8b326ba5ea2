package apikit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit"
	"github.com/dmitrymomot/apikit/pkg/logger"
	"github.com/dmitrymomot/apikit/respond"
)

func TestRecoverer(t *testing.T) {
	t.Run("panic becomes internal error response", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/panic", nil)

		apikit.Recoverer(log, respond.NewMapper(respond.WithLogger(log)))(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":"internal_error","message":"An error occurred processing your request"}`, rec.Body.String())

		logged := buf.String()
		assert.Contains(t, logged, "panic recovered")
		assert.Contains(t, logged, "boom")
		assert.Contains(t, logged, "stack")
	})

	t.Run("no panic passes through", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)

		apikit.Recoverer(nil, nil)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("abort handler panic is re-raised", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/abort", nil)

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			apikit.Recoverer(nil, nil)(next).ServeHTTP(rec, req)
		})
	})
}

func TestShield(t *testing.T) {
	t.Run("detaches cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var handlerErr error
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerErr = r.Context().Err()
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/users/u_1", nil).WithContext(ctx)

		apikit.Shield(next).ServeHTTP(rec, req)

		assert.NoError(t, handlerErr, "handler context must not inherit cancellation")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preserves context values", func(t *testing.T) {
		key := apikit.NewContextKey("tenant")
		ctx := context.WithValue(context.Background(), key, "acme")

		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = apikit.ContextValue[string](r.Context(), key)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

		apikit.Shield(next).ServeHTTP(rec, req)

		assert.Equal(t, "acme", got)
	})
}

func TestRequireBearer(t *testing.T) {
	okCheck := func(ctx context.Context, token string) (context.Context, error) {
		if token == "secret_token" {
			return nil, nil
		}
		return nil, errors.New("unknown token")
	}

	newGuarded := func(check apikit.BearerCheck) http.Handler {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		return apikit.RequireBearer(check, respond.NewMapper())(next)
	}

	decodeBody := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
		t.Helper()
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	t.Run("missing token yields 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)

		newGuarded(okCheck).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", decodeBody(t, rec)["code"])
	})

	t.Run("malformed authorization header yields 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		newGuarded(okCheck).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token yields 403", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "Bearer wrong_token")

		newGuarded(okCheck).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "forbidden", decodeBody(t, rec)["code"])
	})

	t.Run("valid token passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "Bearer secret_token")

		newGuarded(okCheck).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("case insensitive scheme", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "bearer secret_token")

		newGuarded(okCheck).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("check error carrying descriptor is written as-is", func(t *testing.T) {
		check := func(ctx context.Context, token string) (context.Context, error) {
			return nil, apikit.ErrTooManyRequests.New()
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "Bearer secret_token")

		newGuarded(check).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "too_many_requests", decodeBody(t, rec)["code"])
	})

	t.Run("check can derive the request context", func(t *testing.T) {
		key := apikit.NewContextKey("user")
		check := func(ctx context.Context, token string) (context.Context, error) {
			return context.WithValue(ctx, key, "u_42"), nil
		}

		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = apikit.ContextValue[string](r.Context(), key)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "Bearer secret_token")

		apikit.RequireBearer(check, nil)(next).ServeHTTP(rec, req)

		assert.Equal(t, "u_42", got)
	})
}

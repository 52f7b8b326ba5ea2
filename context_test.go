package apikit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit"
)

func TestContextValue(t *testing.T) {
	type account struct {
		ID    int
		Email string
	}

	t.Run("round-trips values of any type", func(t *testing.T) {
		nameKey := apikit.NewContextKey("name")
		accKey := apikit.NewContextKey("account")
		ptrKey := apikit.NewContextKey("account-ptr")

		acc := account{ID: 7, Email: "ops@example.com"}
		ctx := context.WithValue(context.Background(), nameKey, "billing")
		ctx = context.WithValue(ctx, accKey, acc)
		ctx = context.WithValue(ctx, ptrKey, &acc)

		assert.Equal(t, "billing", apikit.ContextValue[string](ctx, nameKey))
		assert.Equal(t, acc, apikit.ContextValue[account](ctx, accKey))
		got := apikit.ContextValue[*account](ctx, ptrKey)
		require.NotNil(t, got)
		assert.Equal(t, acc, *got)
	})

	t.Run("zero value when absent or mistyped", func(t *testing.T) {
		key := apikit.NewContextKey("count")

		assert.Empty(t, apikit.ContextValue[string](context.Background(), key))

		ctx := context.WithValue(context.Background(), key, "ten")
		assert.Zero(t, apikit.ContextValue[int](ctx, key))
	})

	t.Run("stored nil pointer comes back nil", func(t *testing.T) {
		key := apikit.NewContextKey("account")
		ctx := context.WithValue(context.Background(), key, (*account)(nil))

		assert.Nil(t, apikit.ContextValue[*account](ctx, key))
	})

	t.Run("keys sharing a name stay distinct", func(t *testing.T) {
		first := apikit.NewContextKey("tenant")
		second := apikit.NewContextKey("tenant")
		ctx := context.WithValue(context.Background(), first, "acme")

		assert.Equal(t, "acme", apikit.ContextValue[string](ctx, first))
		assert.Empty(t, apikit.ContextValue[string](ctx, second))
	})
}

func TestContextKeyString(t *testing.T) {
	key := apikit.NewContextKey("tenant")
	assert.Contains(t, key.String(), "tenant")
}

func TestNewContext(t *testing.T) {
	t.Run("exposes request and response writer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/widgets", nil)
		rec := httptest.NewRecorder()

		ctx := apikit.NewContext(rec, req)

		assert.Equal(t, req, ctx.Request())
		assert.Equal(t, rec, ctx.ResponseWriter())
	})

	t.Run("delegates to the request context", func(t *testing.T) {
		key := apikit.NewContextKey("trace")
		base, cancel := context.WithDeadline(context.Background(), time.Now().Add(time.Minute))
		defer cancel()
		base = context.WithValue(base, key, "abc-123")

		req := httptest.NewRequest(http.MethodGet, "/widgets", nil).WithContext(base)
		ctx := apikit.NewContext(httptest.NewRecorder(), req)

		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		assert.NoError(t, ctx.Err())
		assert.Equal(t, "abc-123", apikit.ContextValue[string](ctx, key))

		cancel()
		assert.Error(t, ctx.Err())
		select {
		case <-ctx.Done():
		default:
			t.Fatal("expected done channel to be closed after cancel")
		}
	})
}

package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/binder"
)

func TestQuery(t *testing.T) {
	type searchRequest struct {
		Query    string   `query:"q"`
		Page     int      `query:"page"`
		Limit    uint     `query:"limit"`
		Score    float64  `query:"score"`
		Active   *bool    `query:"active"`
		Tags     []string `query:"tags"`
		Internal string   `query:"-"`
	}

	t.Run("binds all supported types", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search?q=golang&page=2&limit=50&score=0.75&active=true", nil)

		var result searchRequest
		err := binder.Query()(req, &result)

		require.NoError(t, err)
		assert.Equal(t, "golang", result.Query)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, uint(50), result.Limit)
		assert.Equal(t, 0.75, result.Score)
		require.NotNil(t, result.Active)
		assert.True(t, *result.Active)
	})

	t.Run("repeated parameters fill slices", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search?tags=go&tags=web", nil)

		var result searchRequest
		err := binder.Query()(req, &result)

		require.NoError(t, err)
		assert.Equal(t, []string{"go", "web"}, result.Tags)
	})

	t.Run("comma separated values fill slices", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search?tags=go,web", nil)

		var result searchRequest
		err := binder.Query()(req, &result)

		require.NoError(t, err)
		assert.Equal(t, []string{"go", "web"}, result.Tags)
	})

	t.Run("missing parameters keep zero values", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search", nil)

		var result searchRequest
		err := binder.Query()(req, &result)

		require.NoError(t, err)
		assert.Empty(t, result.Query)
		assert.Zero(t, result.Page)
		assert.Nil(t, result.Active)
		assert.Nil(t, result.Tags)
	})

	t.Run("skips dash tagged fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search?internal=secret", nil)

		var result searchRequest
		err := binder.Query()(req, &result)

		require.NoError(t, err)
		assert.Empty(t, result.Internal)
	})

	t.Run("invalid int value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search?page=abc", nil)

		var result searchRequest
		err := binder.Query()(req, &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
		assert.Contains(t, err.Error(), "Page")
	})

	t.Run("non-pointer target", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search?q=x", nil)

		var result searchRequest
		err := binder.Query()(req, result)

		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})
}

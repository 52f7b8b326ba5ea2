package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/pkg/logger"
)

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{"error code", logger.ErrorCode("user_not_found"), "error_code", "user_not_found"},
		{"taxonomy", logger.Taxonomy("users"), "taxonomy", "users"},
		{"field", logger.Field("email"), "field", "email"},
		{"component", logger.Component("respond"), "component", "respond"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantKey, tt.attr.Key)
			assert.Equal(t, tt.wantVal, tt.attr.Value.String())
		})
	}

	t.Run("optional helpers vanish when empty", func(t *testing.T) {
		t.Parallel()
		for _, attr := range []slog.Attr{
			logger.ErrorCode(""),
			logger.Taxonomy(""),
			logger.Field(""),
		} {
			assert.True(t, attr.Equal(slog.Attr{}))
		}
	})
}

func TestError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	attr := logger.Error(boom)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, boom, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	first := errors.New("first")
	second := errors.New("second")

	attr := logger.Errors(first, nil, second)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	group := attr.Value.Group()
	require.Len(t, group, 2, "nil entries are dropped")
	assert.Equal(t, first, group[0].Value.Any())
	assert.Equal(t, second, group[1].Value.Any())

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	group := attr.Value.Group()
	require.Len(t, group, 2)
	assert.Equal(t, "id", group[0].Key)
	assert.Equal(t, "n", group[1].Key)
}

func TestStatus(t *testing.T) {
	t.Parallel()
	attr := logger.Status(422)
	assert.Equal(t, "status_code", attr.Key)
	assert.Equal(t, int64(422), attr.Value.Int64())
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	attr := logger.RequestID("req-9")
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-9", attr.Value.Any())

	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
}

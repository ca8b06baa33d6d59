package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookstore/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output carries static attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithProduction("bookstore"),
			logger.WithOutput(&buf),
		)
		log.Info("hello", logger.Component("test"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "bookstore", rec["service"])
		assert.Equal(t, "production", rec["env"])
		assert.Equal(t, "test", rec["component"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
		)
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("development enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("bookstore"), logger.WithOutput(&buf))
		log.Debug("details")
		assert.Contains(t, buf.String(), "details")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("nope logger discards", func(t *testing.T) {
		t.Parallel()
		log := logger.NewNope()
		assert.False(t, log.Enabled(t.Context(), slog.LevelError))
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("nonsense"))
}

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	t.Parallel()
	attr := logger.Duration(2 * time.Second)
	assert.Equal(t, "duration", attr.Key)
	assert.Equal(t, 2*time.Second, attr.Value.Duration())
}

func TestEmptyIdentifiers(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.UserID("").Equal(slog.Attr{}))
	assert.True(t, logger.DocumentID(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Redirect("").Equal(slog.Attr{}))

	assert.Equal(t, "u-1", logger.UserID("u-1").Value.String())
	assert.Equal(t, "/login", logger.Redirect("/login").Value.String())
}

func TestRole(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "anonymous", logger.Role("").Value.String())
	assert.Equal(t, "admin", logger.Role("admin").Value.String())
}

func TestHTTPAttrs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "GET", logger.Method("GET").Value.String())
	assert.Equal(t, "/books", logger.Path("/books").Value.String())
	assert.Equal(t, int64(401), logger.StatusCode(401).Value.Int64())
	assert.Equal(t, int64(3), logger.Count("migrated", 3).Value.Int64())
}

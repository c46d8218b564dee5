package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homesite/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

type ctxKey struct{}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")

		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})

	t.Run("level by name", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("unknown level name keeps default", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("verbose"))
		log.Debug("dropped")
		assert.Empty(t, buf.String())
		log.Info("kept")
		assert.NotEmpty(t, buf.String())
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("context value", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("trace", ctxKey{}))

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "abc", decode(t, buf)["trace"])
	})

	t.Run("extractors survive With", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				v, ok := ctx.Value(ctxKey{}).(string)
				return slog.String("id", v), ok
			}),
		).With(logger.Component("web"))

		ctx := context.WithValue(context.Background(), ctxKey{}, "42")
		log.InfoContext(ctx, "msg")

		entry := decode(t, buf)
		assert.Equal(t, "42", entry["id"])
		assert.Equal(t, "web", entry["component"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("production", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("production", "homesite"), logger.WithOutput(buf))
		log.Debug("dropped")
		log.Info("kept")

		entry := decode(t, buf)
		assert.Equal(t, "homesite", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("development", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("", "homesite"), logger.WithOutput(buf))
		log.Debug("visible")

		assert.Contains(t, buf.String(), "env=development")
		assert.Contains(t, buf.String(), "msg=visible")
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, slog.String("request_id", "r1"), logger.RequestID("r1"))
	assert.Equal(t, slog.String("client_ip", "203.0.113.7"), logger.ClientIP("203.0.113.7"))
	assert.Equal(t, slog.String("remote_addr", "127.0.0.1:1234"), logger.RemoteAddr("127.0.0.1:1234"))
	assert.Equal(t, slog.Int("status", 404), logger.Status(404))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
	assert.Equal(t, "remote", logger.Source("remote").Value.String())
	assert.Equal(t, slog.String("method", "GET"), logger.Method("GET"))
	assert.Equal(t, slog.String("path", "/echo"), logger.Path("/echo"))
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

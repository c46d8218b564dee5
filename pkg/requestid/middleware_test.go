package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homesite/pkg/requestid"
)

func serve(t *testing.T, mw func(http.Handler) http.Handler, incoming string) (ctxID, headerID string) {
	t.Helper()

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()

		ctxID, headerID := serve(t, requestid.Middleware(), "")
		assert.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, headerID)
		assert.Len(t, ctxID, 36)
	})

	t.Run("reuses valid ids", func(t *testing.T) {
		t.Parallel()

		for _, id := range []string{"abc123", "ABC-123_xyz", "550e8400-e29b-41d4-a716-446655440000"} {
			ctxID, headerID := serve(t, requestid.Middleware(), id)
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, headerID)
		}
	})

	t.Run("replaces invalid ids", func(t *testing.T) {
		t.Parallel()

		invalid := []string{
			"test@request#id",
			"test request id",
			"test/request/id",
			"<script>alert(1)</script>",
			strings.Repeat("a", 129),
		}
		for _, id := range invalid {
			ctxID, headerID := serve(t, requestid.Middleware(), id)
			assert.NotEqual(t, id, ctxID)
			assert.Equal(t, ctxID, headerID)
		}
	})

	t.Run("untrusted source gets a fresh id", func(t *testing.T) {
		t.Parallel()

		mw := requestid.Middleware(
			requestid.WithTrustedSource(func(*http.Request) bool { return false }),
			requestid.WithGenerator(func() string { return "generated" }),
		)
		ctxID, headerID := serve(t, mw, "from-client")
		assert.Equal(t, "generated", ctxID)
		assert.Equal(t, "generated", headerID)
	})

	t.Run("trusted source keeps its id", func(t *testing.T) {
		t.Parallel()

		mw := requestid.Middleware(
			requestid.WithTrustedSource(func(*http.Request) bool { return true }),
			requestid.WithGenerator(func() string { return "generated" }),
		)
		ctxID, _ := serve(t, mw, "from-proxy")
		assert.Equal(t, "from-proxy", ctxID)
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "test-id")
	assert.Equal(t, "test-id", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Empty(t, requestid.FromContext(nil)) //nolint:staticcheck
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "r-1"))
	require.True(t, ok)
	assert.Equal(t, slog.String("request_id", "r-1"), attr)

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, nil))
	log.InfoContext(context.Background(), "msg", attr)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "r-1", entry["request_id"])
}

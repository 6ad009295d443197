package middleware_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/core/handler"
	"github.com/dmitrymomot/qrkit/core/response"
	"github.com/dmitrymomot/qrkit/core/router"
	"github.com/dmitrymomot/qrkit/middleware"
)

// testLogHandler captures log entries for assertions.
type testLogHandler struct {
	mu      sync.Mutex
	entries []map[string]any
}

func (h *testLogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *testLogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := map[string]any{
		"level": r.Level,
		"msg":   r.Message,
	}
	r.Attrs(func(a slog.Attr) bool {
		entry[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()
	return nil
}

func (h *testLogHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *testLogHandler) WithGroup(string) slog.Handler { return h }

func (h *testLogHandler) last(t *testing.T) map[string]any {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(t, h.entries)
	return h.entries[len(h.entries)-1]
}

func newLoggedRouter(h *testLogHandler) *router.Router[*router.Context] {
	r := router.New[*router.Context]()
	r.Use(
		middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			Generator: func() string { return "rid" },
		}),
		middleware.LoggingWithLogger[*router.Context](slog.New(h)),
	)
	return r
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		handle handler.HandlerFunc[*router.Context]
		status int64
		level  slog.Level
		hasErr bool
	}{
		{
			name: "success",
			handle: func(ctx *router.Context) handler.Response {
				return response.Blob([]byte("<svg/>"), "image/svg+xml")
			},
			status: http.StatusOK,
			level:  slog.LevelInfo,
		},
		{
			name: "client_error",
			handle: func(ctx *router.Context) handler.Response {
				return response.Error(response.ErrBadRequest)
			},
			status: http.StatusBadRequest,
			level:  slog.LevelWarn,
			hasErr: true,
		},
		{
			name: "server_error",
			handle: func(ctx *router.Context) handler.Response {
				return response.Error(errors.New("encoder exploded"))
			},
			status: http.StatusInternalServerError,
			level:  slog.LevelError,
			hasErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := &testLogHandler{}
			r := newLoggedRouter(h)
			r.Get("/qr", tt.handle)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/qr?content=hi", nil))

			entry := h.last(t)
			assert.Equal(t, "HTTP request completed", entry["msg"])
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, int64(tt.status), entry["status_code"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/qr", entry["path"])
			assert.Equal(t, "content=hi", entry["query"])
			assert.Equal(t, "rid", entry["request_id"])
			_, hasErr := entry["error"]
			assert.Equal(t, tt.hasErr, hasErr)
		})
	}
}

func TestLoggingUnknownPath(t *testing.T) {
	t.Parallel()

	h := &testLogHandler{}
	r := newLoggedRouter(h)
	r.Get("/qr", func(ctx *router.Context) handler.Response {
		return response.NoContent()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "rid", w.Header().Get("X-Request-ID"))

	entry := h.last(t)
	assert.Equal(t, int64(http.StatusNotFound), entry["status_code"])
	assert.Equal(t, slog.LevelWarn, entry["level"])
	assert.Equal(t, "rid", entry["request_id"])
}

func TestLoggingBytesOut(t *testing.T) {
	t.Parallel()

	h := &testLogHandler{}
	r := newLoggedRouter(h)
	r.Get("/", func(ctx *router.Context) handler.Response {
		return response.String("12345")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, int64(5), h.last(t)["bytes_out"])
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	h := &testLogHandler{}
	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
		Logger: slog.New(h),
		Skip:   func(ctx handler.Context) bool { return true },
	}))
	r.Get("/", func(ctx *router.Context) handler.Response {
		return response.NoContent()
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, h.entries)
}

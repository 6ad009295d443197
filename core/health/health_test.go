package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/core/health"
	"github.com/dmitrymomot/qrkit/core/router"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, pattern string, r *router.Router[*router.Context]) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, pattern, nil))
	return w
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/health/live", health.Liveness[*router.Context])

	w := serve(t, "/health/live", r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("connection refused") }
	boom := func(context.Context) error { panic("boom") }

	tests := []struct {
		name   string
		checks []health.Check
		status int
		failed []any
	}{
		{name: "no_checks", status: http.StatusOK},
		{
			name:   "all_pass",
			checks: []health.Check{{Name: "redis", Fn: ok}, {Name: "encoder", Fn: ok}},
			status: http.StatusOK,
		},
		{
			name:   "one_fails",
			checks: []health.Check{{Name: "redis", Fn: fail}, {Name: "encoder", Fn: ok}},
			status: http.StatusServiceUnavailable,
			failed: []any{"redis"},
		},
		{
			name:   "panic_counts_as_failure",
			checks: []health.Check{{Name: "s3", Fn: boom}, {Name: "redis", Fn: fail}},
			status: http.StatusServiceUnavailable,
			failed: []any{"redis", "s3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := router.New[*router.Context]()
			r.Get("/health/ready", health.Readiness[*router.Context](discard(), tt.checks...))

			w := serve(t, "/health/ready", r)
			require.Equal(t, tt.status, w.Code)

			if tt.status == http.StatusOK {
				assert.Equal(t, "READY", w.Body.String())
				return
			}

			var body struct {
				Error struct {
					Code    string         `json:"code"`
					Details map[string]any `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "service_unavailable", body.Error.Code)
			assert.Equal(t, tt.failed, body.Error.Details["failed"])
		})
	}
}

func TestReadinessHonoursTimeout(t *testing.T) {
	t.Parallel()

	slow := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	r := router.New[*router.Context]()
	r.Get("/ready", health.Readiness[*router.Context](discard(), health.Check{Name: "slow", Fn: slow}))

	w := serve(t, "/ready", r)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

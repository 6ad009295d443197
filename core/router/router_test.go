package router_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/core/handler"
	"github.com/dmitrymomot/qrkit/core/router"
)

func text(s string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain")
		_, err := w.Write([]byte(s))
		return err
	}
}

func decodeError(t *testing.T, body string) map[string]any {
	t.Helper()
	var out struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out.Error
}

type teapotError struct{}

func (teapotError) Error() string { return "short and stout" }

func (teapotError) StatusCode() int { return http.StatusTeapot }

func (teapotError) ErrorCode() string { return "teapot" }

func (teapotError) MarshalJSON() ([]byte, error) {
	return []byte(`{"code":"teapot"}`), nil
}

func TestRouter_Dispatch(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/qr", func(ctx *router.Context) handler.Response {
		return text("get")
	})
	r.Post("/qr/publish", func(ctx *router.Context) handler.Response {
		return text("post")
	})
	r.Get("/items/{id}", func(ctx *router.Context) handler.Response {
		return text("item " + ctx.Param("id"))
	})

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
	}{
		{"get", http.MethodGet, "/qr", http.StatusOK, "get"},
		{"post", http.MethodPost, "/qr/publish", http.StatusOK, "post"},
		{"path value", http.MethodGet, "/items/42", http.StatusOK, "item 42"},
		{"unknown path", http.MethodGet, "/missing", http.StatusNotFound, ""},
		{"wrong method", http.MethodPost, "/items/1", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}

	assert.Equal(t, []router.Route{
		{Method: http.MethodGet, Pattern: "/qr"},
		{Method: http.MethodPost, Pattern: "/qr/publish"},
		{Method: http.MethodGet, Pattern: "/items/{id}"},
	}, r.Routes())
}

func TestRouter_NotFoundBody(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "not found", decodeError(t, rec.Body.String())["message"])
}

func TestRouter_NotFoundRunsMiddleware(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
		return func(ctx *router.Context) handler.Response {
			ctx.ResponseWriter().Header().Set("X-Seen", "yes")
			return next(ctx)
		}
	})
	r.Get("/qr", func(*router.Context) handler.Response { return text("ok") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "yes", rec.Header().Get("X-Seen"))
}

func TestRouter_Errors(t *testing.T) {
	t.Parallel()

	t.Run("plain error hides message", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			return func(w http.ResponseWriter, req *http.Request) error {
				return errors.New("database password is hunter2")
			}
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hunter2")
	})

	t.Run("structured error", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			return func(w http.ResponseWriter, req *http.Request) error {
				return teapotError{}
			}
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "teapot", decodeError(t, rec.Body.String())["code"])
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var got error
		r := router.New[*router.Context](
			router.WithErrorHandler[*router.Context](func(ctx *router.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusInternalServerError)
			}),
		)
		r.Get("/", func(ctx *router.Context) handler.Response { return nil })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got, router.ErrNilResponse)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		t.Parallel()

		var got error
		r := router.New[*router.Context](
			router.WithErrorHandler[*router.Context](func(ctx *router.Context, err error) {
				got = err
				router.DefaultErrorHandler(ctx, err)
			}),
		)
		r.Get("/", func(ctx *router.Context) handler.Response {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() {
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var perr router.PanicError
		require.ErrorAs(t, got, &perr)
		assert.Equal(t, "boom", perr.Value())
		assert.NotEmpty(t, perr.Stack())
	})

	t.Run("error after write keeps response", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			return func(w http.ResponseWriter, req *http.Request) error {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				return errors.New("late failure")
			}
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "partial", rec.Body.String())
	})
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var trace []string
	mw := func(name string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				trace = append(trace, name)
				return next(ctx)
			}
		}
	}

	r := router.New[*router.Context](router.WithMiddleware(mw("a")))
	r.Use(mw("b"), mw("c"))
	r.Get("/", func(ctx *router.Context) handler.Response {
		trace = append(trace, "handler")
		return text("ok")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a", "b", "c", "handler"}, trace)
}

type appContext struct {
	*router.Context
	tenant string
}

func TestRouter_CustomContext(t *testing.T) {
	t.Parallel()

	t.Run("factory", func(t *testing.T) {
		t.Parallel()

		r := router.New[*appContext](
			router.WithContextFactory(func(w http.ResponseWriter, req *http.Request) *appContext {
				return &appContext{Context: router.NewContext(w, req), tenant: req.Header.Get("X-Tenant")}
			}),
		)
		r.Get("/", func(ctx *appContext) handler.Response {
			return text(strings.ToUpper(ctx.tenant))
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant", "acme")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "ACME", rec.Body.String())
	})

	t.Run("missing factory panics", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, router.ErrNoContextFactory, func() {
			router.New[*appContext]()
		})
	})
}

func TestContext_SetValue(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := router.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	ctx.SetValue(key{}, "v")

	assert.Equal(t, "v", ctx.Value(key{}))
	assert.Equal(t, "v", ctx.Request().Context().Value(key{}))
}

func TestResponseStatus(t *testing.T) {
	t.Parallel()

	var status int
	var size int64
	var tracked bool
	r := router.New[*router.Context]()
	r.Get("/", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, req *http.Request) error {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("12345"))
			status, size, tracked = router.ResponseStatus(w)
			return nil
		}
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, tracked)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, int64(5), size)

	_, _, tracked = router.ResponseStatus(httptest.NewRecorder())
	assert.False(t, tracked)
}

package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/qrkit/core/handler"
	"github.com/dmitrymomot/qrkit/core/logger"
)

// Route describes a registered pattern.
type Route struct {
	Method  string
	Pattern string
}

// Router dispatches requests to typed handlers through an http.ServeMux.
// Register routes and middleware before serving.
type Router[C handler.Context] struct {
	mux          *http.ServeMux
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
	routes       []Route
}

// New creates a Router. For context types other than *Context a factory must
// be supplied with WithContextFactory; New panics with ErrNoContextFactory
// otherwise.
func New[C handler.Context](opts ...Option[C]) *Router[C] {
	r := &Router[C]{
		mux:          http.NewServeMux(),
		errorHandler: DefaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		r.newContext = func(w http.ResponseWriter, req *http.Request) C {
			return any(NewContext(w, req)).(C)
		}
	}

	// Unmatched requests still pass through the middleware chain.
	r.mux.HandleFunc("/", r.serve(notFound[C]))

	return r
}

// Use appends router-wide middleware. The first middleware added is the
// outermost one.
func (r *Router[C]) Use(middlewares ...handler.Middleware[C]) {
	r.middlewares = append(r.middlewares, middlewares...)
}

// Get registers h for GET (and HEAD) requests to pattern.
func (r *Router[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	r.Method(http.MethodGet, pattern, h)
}

// Post registers h for POST requests to pattern.
func (r *Router[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	r.Method(http.MethodPost, pattern, h)
}

// Method registers h for the given method and pattern.
func (r *Router[C]) Method(method, pattern string, h handler.HandlerFunc[C]) {
	r.routes = append(r.routes, Route{Method: method, Pattern: pattern})
	r.mux.HandleFunc(method+" "+pattern, r.serve(h))
}

// Handle registers h for every method on pattern.
func (r *Router[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	r.routes = append(r.routes, Route{Method: "*", Pattern: pattern})
	r.mux.HandleFunc(pattern, r.serve(h))
}

// Routes lists registered routes in registration order.
func (r *Router[C]) Routes() []Route {
	return append([]Route(nil), r.routes...)
}

// ServeHTTP implements http.Handler.
func (r *Router[C]) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func notFound[C handler.Context](C) handler.Response {
	return func(http.ResponseWriter, *http.Request) error {
		return errNotFound
	}
}

func (r *Router[C]) serve(h handler.HandlerFunc[C]) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ww := newResponseWriter(w)
		ctx := r.newContext(ww, req)

		defer func() {
			if p := recover(); p != nil {
				perr := &panicError{value: p, stack: debug.Stack()}
				if ww.Written() {
					r.logger.Error("panic after response written",
						logger.Error(perr),
						logger.Method(req.Method),
						logger.Path(req.URL.Path),
						logger.StatusCode(ww.Status()),
					)
					return
				}
				r.errorHandler(ctx, perr)
			}
		}()

		fn := handler.Chain(h, r.middlewares...)
		resp := fn(ctx)
		if resp == nil {
			r.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp(ww, ctx.Request()); err != nil {
			r.errorHandler(ctx, err)
		}
	}
}

package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/qrkit/core/handler"
)

// Option configures a Router.
type Option[C handler.Context] func(*Router[C])

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(r *Router[C]) {
		if h != nil {
			r.errorHandler = h
		}
	}
}

// WithMiddleware adds router-wide middleware.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(r *Router[C]) {
		r.middlewares = append(r.middlewares, middlewares...)
	}
}

// WithContextFactory sets the constructor for custom context types.
// Required unless C is *Context.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request) C) Option[C] {
	return func(r *Router[C]) {
		r.newContext = f
	}
}

// WithLogger sets the logger used for recovered panics.
func WithLogger[C handler.Context](l *slog.Logger) Option[C] {
	return func(r *Router[C]) {
		if l != nil {
			r.logger = l
		}
	}
}

package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/qrkit/core/handler"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilResponse      = errors.New("nil response")
	ErrNotFound         = errors.New("not found")
)

// statusCode is implemented by errors that carry an HTTP status.
type statusCode interface {
	StatusCode() int
}

// structuredError is serialized as-is into the error body.
// response.HTTPError implements it.
type structuredError interface {
	statusCode
	ErrorCode() string
}

// DefaultErrorHandler writes err as JSON: {"error": {...}}. The status comes
// from a StatusCode method anywhere in the error chain, else 500. Messages of
// unclassified 5xx errors are not exposed. Nothing is written if the response
// has already started.
func DefaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	var body any
	var se structuredError
	switch {
	case errors.As(err, &se):
		body = se
	case status >= http.StatusInternalServerError:
		body = map[string]string{"message": http.StatusText(status)}
	default:
		body = map[string]string{"message": err.Error()}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": body})
}

// statusError attaches an HTTP status to a router sentinel error.
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }

func (e *statusError) Unwrap() error { return e.err }

func (e *statusError) StatusCode() int { return e.status }

var errNotFound = &statusError{status: http.StatusNotFound, err: ErrNotFound}

// PanicError is passed to the ErrorHandler when a handler panics.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

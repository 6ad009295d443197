package qrserver

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/qrkit/core/response"
	"github.com/dmitrymomot/qrkit/integration/storage/s3"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

var (
	ErrNilLogger    = errors.New("logger cannot be nil")
	ErrNilServer    = errors.New("server cannot be nil")
	ErrNilRenderer  = errors.New("renderer cannot be nil")
	ErrNilPublisher = errors.New("publisher cannot be nil")
)

// httpError maps rendering and storage failures to HTTP errors. Input errors
// carry their message; everything else is reported generically.
func httpError(err error) response.HTTPError {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return response.ErrRequestEntityTooLarge.WithDetails(map[string]any{"limit": tooLarge.Limit})
	case errors.Is(err, qrcode.ErrContentTooLong):
		return response.ErrUnprocessableEntity.WithMessage(err.Error())
	case errors.Is(err, ErrInvalidQuery),
		errors.Is(err, qrcode.ErrEmptyContent),
		errors.Is(err, qrcode.ErrInvalidSize),
		errors.Is(err, qrcode.ErrInvalidLevel),
		errors.Is(err, qrcode.ErrUnsupportedFormat):
		return response.ErrBadRequest.WithMessage(err.Error())
	case errors.Is(err, s3.ErrServiceUnavailable),
		errors.Is(err, s3.ErrOperationTimeout):
		return response.ErrServiceUnavailable
	case errors.Is(err, s3.ErrAccessDenied),
		errors.Is(err, s3.ErrBucketNotFound):
		return response.ErrBadGateway
	default:
		return response.ErrInternalServerError
	}
}

package qrcode

import "errors"

// Sentinel errors. Wrapped errors keep the underlying cause; check with errors.Is.
var (
	ErrEmptyContent      = errors.New("qrcode: content is empty")
	ErrContentTooLong    = errors.New("qrcode: content too long to encode")
	ErrInvalidLevel      = errors.New("qrcode: invalid error correction level")
	ErrInvalidSize       = errors.New("qrcode: size must be between 1 and 4096 pixels")
	ErrEmptyMatrix       = errors.New("qrcode: module matrix is empty")
	ErrNotSquare         = errors.New("qrcode: module matrix is not square")
	ErrUnsupportedFormat = errors.New("qrcode: unsupported image format")
	ErrEncodingFailed    = errors.New("qrcode: encoding failed")
	ErrImageEncodeFailed = errors.New("qrcode: image encoding failed")
)

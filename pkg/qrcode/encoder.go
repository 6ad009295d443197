package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Matrix is a square grid of QR modules in row-major order.
// A true cell is a dark module. The matrix holds the symbol only, without
// the quiet zone.
type Matrix [][]bool

// Size returns the number of modules per side.
func (m Matrix) Size() int {
	return len(m)
}

// Dark reports whether the module at column x, row y is dark.
// Out-of-range coordinates are light.
func (m Matrix) Dark(x, y int) bool {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return false
	}
	return m[y][x]
}

// Validate checks that the matrix is non-empty and square.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return ErrEmptyMatrix
	}
	for y, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("%w: row %d has %d modules, want %d", ErrNotSquare, y, len(row), len(m))
		}
	}
	return nil
}

// Encoder turns text into a module matrix at the given error-correction level.
type Encoder interface {
	Encode(content string, level Level) (Matrix, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(content string, level Level) (Matrix, error)

// Encode calls fn.
func (fn EncoderFunc) Encode(content string, level Level) (Matrix, error) {
	return fn(content, level)
}

// NewEncoder returns the default encoder backed by github.com/skip2/go-qrcode.
func NewEncoder() Encoder {
	return EncoderFunc(encode)
}

var defaultEncoder = NewEncoder()

// Encode encodes content with the default encoder.
//
// Empty content returns ErrEmptyContent: go-qrcode cannot build a symbol
// without data segments, so there is no version-1 symbol for "".
func Encode(content string, level Level) (Matrix, error) {
	return defaultEncoder.Encode(content, level)
}

func encode(content string, level Level) (Matrix, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if level == "" {
		level = DefaultLevel
	}
	rl, err := level.recoveryLevel()
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(content, rl)
	if err != nil {
		if strings.Contains(err.Error(), "too long") {
			return nil, fmt.Errorf("%w: %d bytes at level %s", ErrContentTooLong, len(content), level)
		}
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	q.DisableBorder = true

	return Matrix(q.Bitmap()), nil
}

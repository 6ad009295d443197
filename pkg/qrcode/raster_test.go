package qrcode_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestRasterFillsDarkModules(t *testing.T) {
	t.Parallel()

	m := parseMatrix("##.", "..#", "#.#")

	img, err := qrcode.Raster(m, qrcode.WithSize(30))
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	// Sample the centre of each 10px cell.
	for y, row := range m {
		for x, dark := range row {
			got := img.NRGBAAt(x*10+5, y*10+5)
			if dark {
				assert.Equal(t, black, got, "cell %d,%d", x, y)
			} else {
				assert.Equal(t, white, got, "cell %d,%d", x, y)
			}
		}
	}
}

func TestRasterPadding(t *testing.T) {
	t.Parallel()

	m := parseMatrix("###", "###", "###")

	img, err := qrcode.Raster(m, qrcode.WithSize(50), qrcode.WithPadding(true))
	require.NoError(t, err)

	// 3 modules + 2 margin cells at 10px each.
	assert.Equal(t, white, img.NRGBAAt(5, 5), "top-left margin")
	assert.Equal(t, white, img.NRGBAAt(45, 45), "bottom-right margin")
	assert.Equal(t, black, img.NRGBAAt(15, 15))
	assert.Equal(t, black, img.NRGBAAt(35, 35))
	assert.Equal(t, black, img.NRGBAAt(25, 12))
}

func TestRasterFractionalCells(t *testing.T) {
	t.Parallel()

	m, err := qrcode.Encode("fractional", qrcode.LevelLow)
	require.NoError(t, err)

	img, err := qrcode.Raster(m, qrcode.WithSize(100))
	require.NoError(t, err)

	// 100/21 px per module; the finder core (modules 2..4) is solidly dark.
	cw := 100.0 / float64(m.Size())
	cx := int(3.5 * cw)
	assert.Equal(t, black, img.NRGBAAt(cx, cx))
}

func TestRasterColors(t *testing.T) {
	t.Parallel()

	red := color.NRGBA{R: 0xff, A: 0xff}
	img, err := qrcode.Raster(parseMatrix("#.", ".#"),
		qrcode.WithSize(20),
		qrcode.WithColors(red, color.Black),
	)
	require.NoError(t, err)
	assert.Equal(t, red, img.NRGBAAt(5, 5))
	assert.Equal(t, black, img.NRGBAAt(15, 5))
}

func TestRasterErrors(t *testing.T) {
	t.Parallel()

	_, err := qrcode.Raster(nil)
	assert.ErrorIs(t, err, qrcode.ErrEmptyMatrix)

	_, err = qrcode.Raster(parseMatrix("#"), qrcode.WithSize(0))
	assert.ErrorIs(t, err, qrcode.ErrInvalidSize)

	_, err = qrcode.Raster(parseMatrix("#"), qrcode.WithSize(qrcode.MaxSize+1))
	assert.ErrorIs(t, err, qrcode.ErrInvalidSize)
}

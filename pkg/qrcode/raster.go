package qrcode

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Raster draws m onto a new size×size image.
//
// The canvas is cleared to the light color and every dark module is filled as
// an explicit quad. Cell width is fractional (size divided by the module count
// plus the margin), so edges are anti-aliased when the size is not a multiple
// of the module count. Each call redraws from scratch.
func Raster(m Matrix, opts ...Option) (*image.NRGBA, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	if o.size == 0 || o.size > MaxSize {
		return nil, ErrInvalidSize
	}

	n := len(m)
	size := float64(o.size)
	cells := n
	if o.padding {
		cells += 2
	}
	cellWidth := size / float64(cells)
	thickness := 0.0
	if o.padding {
		thickness = cellWidth
	}

	dst := image.NewNRGBA(image.Rect(0, 0, o.size, o.size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(o.light), image.Point{}, draw.Src)

	z := vector.NewRasterizer(o.size, o.size)
	z.DrawOp = draw.Over
	for y, row := range m {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0 := float32(float64(x)*cellWidth + thickness)
			y0 := float32(float64(y)*cellWidth + thickness)
			x1 := float32(float64(x+1)*cellWidth + thickness)
			y1 := float32(float64(y+1)*cellWidth + thickness)
			z.MoveTo(x0, y0)
			z.LineTo(x1, y0)
			z.LineTo(x1, y1)
			z.LineTo(x0, y1)
			z.ClosePath()
		}
	}
	// Quads never overlap, so a single fill of all subpaths equals filling
	// each one in turn.
	z.Draw(dst, dst.Bounds(), image.NewUniform(o.dark), image.Point{})

	return dst, nil
}

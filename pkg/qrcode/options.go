package qrcode

import "image/color"

// DefaultSize is the rendered width and height in pixels when none is given.
const DefaultSize = 100

// MaxSize bounds the width and height of a rendering. Raster output
// allocates size×size pixels.
const MaxSize = 4096

// Option configures the vector and raster renderers.
type Option func(*options)

type options struct {
	size    int
	padding bool
	dark    color.Color
	light   color.Color
}

func newOptions(opts ...Option) options {
	o := options{
		size:  DefaultSize,
		dark:  color.Black,
		light: color.White,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSize sets the output width and height in pixels.
// Negative values are treated as their absolute value.
func WithSize(px int) Option {
	return func(o *options) {
		if px < 0 {
			px = -px
		}
		o.size = px
	}
}

// WithPadding adds a one-module light margin around the symbol.
func WithPadding(padding bool) Option {
	return func(o *options) {
		o.padding = padding
	}
}

// WithColors overrides the dark (foreground) and light (background) colors.
// Nil values keep the defaults.
func WithColors(dark, light color.Color) Option {
	return func(o *options) {
		if dark != nil {
			o.dark = dark
		}
		if light != nil {
			o.light = light
		}
	}
}

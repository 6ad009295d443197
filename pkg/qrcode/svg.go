package qrcode

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVG renders m as a standalone, scalable SVG document.
//
// The viewBox is measured in modules, so the symbol scales to any pixel size
// without resampling. With padding, a one-module margin is added on each side.
func SVG(m Matrix, opts ...Option) (string, error) {
	var b strings.Builder
	if err := WriteSVG(&b, m, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteSVG writes the SVG document for m to w.
func WriteSVG(w io.Writer, m Matrix, opts ...Option) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o := newOptions(opts...)
	if o.size == 0 {
		return ErrInvalidSize
	}

	thickness := 0
	if o.padding {
		thickness = 1
	}
	cells := strconv.Itoa(len(m) + thickness*2)
	size := strconv.Itoa(o.size)

	_, err := io.WriteString(w,
		`<svg xmlns="`+svgNamespace+`" width="`+size+`" height="`+size+
			`" viewBox="0 0 `+cells+` `+cells+`" shape-rendering="crispEdges">`+
			`<path fill="`+hexColor(o.light)+`" d="M0,0 h`+cells+`v`+cells+`H0z"/>`+
			`<path fill="`+hexColor(o.dark)+`" d="`+SVGPath(m, thickness)+`"/>`+
			`</svg>`)
	return err
}

// hexColor formats c as an uppercase "#RRGGBB" string. Alpha is dropped.
func hexColor(c color.Color) string {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", nc.R, nc.G, nc.B)
}

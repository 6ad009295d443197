package component

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// QRCode renders p with the default encoder.
func QRCode(p qrcode.Props) templ.Component {
	return QRCodeWithEncoder(qrcode.NewEncoder(), p)
}

// QRCodeWithEncoder renders p, obtaining modules from enc. The matrix is
// recomputed on every render, so a component built from new props always
// reflects them.
func QRCodeWithEncoder(enc qrcode.Encoder, p qrcode.Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p = p.Normalize()
		if err := p.Validate(); err != nil {
			return err
		}
		m, err := enc.Encode(p.Content, p.Level)
		if err != nil {
			return err
		}
		if p.SVG {
			return SVGRender(m, p.Size, p.Padding).Render(ctx, w)
		}
		return CanvasRender(m, p.Size, p.Padding).Render(ctx, w)
	})
}

// SVGRender writes m as inline SVG markup.
func SVGRender(m qrcode.Matrix, size int, padding bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return qrcode.WriteSVG(w, m, qrcode.WithSize(size), qrcode.WithPadding(padding))
	})
}

// CanvasRender draws m to a size×size PNG and writes it as an <img> element
// with a data URI source.
func CanvasRender(m qrcode.Matrix, size int, padding bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		img, err := qrcode.Raster(m, qrcode.WithSize(size), qrcode.WithPadding(padding))
		if err != nil {
			return err
		}
		uri, err := qrcode.DataURI(img, qrcode.FormatPNG)
		if err != nil {
			return err
		}

		px := strconv.Itoa(img.Bounds().Dx())
		_, err = io.WriteString(w,
			`<img width="`+px+`" height="`+px+`" style="width: `+px+`px; height: `+px+`px;"`+
				` alt="QR code" src="`+templ.EscapeString(uri)+`">`)
		return err
	})
}

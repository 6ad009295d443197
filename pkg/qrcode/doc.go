// Package qrcode renders QR codes as compact SVG documents or raster images.
//
// Symbol generation (Reed-Solomon coding, module placement, masking) is
// delegated to github.com/skip2/go-qrcode through the Encoder interface. This
// package owns what happens after that: compressing the module matrix into a
// minimal SVG path, drawing it onto a pixel canvas, and memoizing renderings
// per set of inputs.
//
// # Encoding
//
//	m, err := qrcode.Encode("https://example.com", qrcode.LevelHigh)
//	if err != nil {
//		return err
//	}
//	fmt.Println(m.Size()) // modules per side, 21..177
//
// Four error-correction levels are supported: L (~7%), M (~15%), Q (~25%)
// and H (~30%). H is the default.
//
// # Vector output
//
// SVGPath merges each horizontal run of dark modules into one rectangle
// segment, so a 33×33 symbol typically needs a few hundred segments instead
// of one per module:
//
//	d := qrcode.SVGPath(m, 0) // "M0 0h7v1H0zM8 0h1v1H8z..."
//
// SVG wraps the path in a document whose viewBox is measured in modules:
//
//	doc, err := qrcode.SVG(m, qrcode.WithSize(256), qrcode.WithPadding(true))
//
// # Raster output
//
// Raster fills every dark module onto an image.NRGBA using
// golang.org/x/image/vector; EncodeImage and DataURI turn it into PNG, JPEG,
// GIF, BMP or TIFF bytes:
//
//	img, err := qrcode.Raster(m, qrcode.WithSize(256))
//	if err != nil {
//		return err
//	}
//	uri, err := qrcode.DataURI(img, qrcode.FormatPNG)
//
// # Rendering from props
//
// Renderer combines the steps above. It keeps the last rendering and only
// recomputes when the props change; an optional Cache (MemoryCache or
// RedisCache) shares results between calls and processes:
//
//	r := qrcode.NewRenderer(qrcode.WithCache(qrcode.NewMemoryCache(256)))
//	res, err := r.Render(ctx, qrcode.Props{Content: "hello", SVG: true})
//	w.Header().Set("Content-Type", res.ContentType)
//	w.Write(res.Body)
package qrcode

package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// Format is a raster output encoding. The zero value is PNG.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatTIFF
)

var formatTypes = map[Format]struct {
	imaging     imaging.Format
	contentType string
	ext         string
}{
	FormatPNG:  {imaging.PNG, "image/png", ".png"},
	FormatJPEG: {imaging.JPEG, "image/jpeg", ".jpg"},
	FormatGIF:  {imaging.GIF, "image/gif", ".gif"},
	FormatBMP:  {imaging.BMP, "image/bmp", ".bmp"},
	FormatTIFF: {imaging.TIFF, "image/tiff", ".tif"},
}

// ParseFormat parses a format name or file extension such as "png", "jpg"
// or ".gif". An empty string yields FormatPNG.
func ParseFormat(s string) (Format, error) {
	if strings.TrimSpace(s) == "" {
		return FormatPNG, nil
	}
	f, err := imaging.FormatFromExtension(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	for k, v := range formatTypes {
		if v.imaging == f {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if t, ok := formatTypes[f]; ok {
		return t.contentType
	}
	return "application/octet-stream"
}

// Ext returns the canonical file extension, including the leading dot.
func (f Format) Ext() string {
	if t, ok := formatTypes[f]; ok {
		return t.ext
	}
	return ""
}

func (f Format) String() string {
	if t, ok := formatTypes[f]; ok {
		return t.imaging.String()
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// EncodeImage writes img to w in the given format.
func EncodeImage(w io.Writer, img image.Image, f Format) error {
	t, ok := formatTypes[f]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	err := imaging.Encode(w, img, t.imaging,
		imaging.JPEGQuality(95),
		imaging.PNGCompressionLevel(png.BestCompression),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageEncodeFailed, err)
	}
	return nil
}

// DataURI encodes img and returns it as a base64 data URI suitable for an
// <img src> attribute.
func DataURI(img image.Image, f Format) (string, error) {
	var buf bytes.Buffer
	if err := EncodeImage(&buf, img, f); err != nil {
		return "", err
	}
	return "data:" + f.ContentType() + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

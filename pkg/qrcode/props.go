package qrcode

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// DefaultContent is rendered when no content is supplied.
const DefaultContent = "👀"

// Props are the inputs of a QR rendering. Any change to a field produces a
// different Key and therefore a fresh rendering.
//
// The zero value of SVG selects raster output, so a literal Props{Content: s}
// renders a PNG. Start from DefaultProps for vector output.
type Props struct {
	Content string `json:"content"`
	Size    int    `json:"size"`
	Level   Level  `json:"level"`
	SVG     bool   `json:"svg"`
	Padding bool   `json:"padding"`
	Format  Format `json:"format"`
}

// DefaultProps returns the default inputs: the eyes emoji, 100px, level H,
// vector output, no padding.
func DefaultProps() Props {
	return Props{
		Content: DefaultContent,
		Size:    DefaultSize,
		Level:   DefaultLevel,
		SVG:     true,
	}
}

// Normalize fills unset fields with defaults and makes Size non-negative.
// Content is left untouched; an empty content is an error at encode time.
func (p Props) Normalize() Props {
	if p.Size < 0 {
		p.Size = -p.Size
	}
	if p.Size == 0 {
		p.Size = DefaultSize
	}
	if p.Level == "" {
		p.Level = DefaultLevel
	}
	return p
}

// Validate reports the first invalid field of normalized props.
func (p Props) Validate() error {
	if p.Content == "" {
		return ErrEmptyContent
	}
	if p.Size <= 0 || p.Size > MaxSize {
		return ErrInvalidSize
	}
	if !p.Level.Valid() {
		return ErrInvalidLevel
	}
	if _, ok := formatTypes[p.Format]; !ok && !p.SVG {
		return ErrUnsupportedFormat
	}
	return nil
}

// ContentType is the MIME type of the rendering these props produce.
func (p Props) ContentType() string {
	if p.SVG {
		return "image/svg+xml"
	}
	return p.Format.ContentType()
}

// Ext is the file extension of the rendering these props produce.
func (p Props) Ext() string {
	if p.SVG {
		return ".svg"
	}
	return p.Format.Ext()
}

// Key returns a stable identifier of the props, suitable as a cache key.
// The raster format only contributes for raster renderings.
func (p Props) Key() string {
	buf := make([]byte, 0, len(p.Content)+32)
	buf = strconv.AppendQuote(buf, p.Content)
	buf = append(buf, '|')
	buf = strconv.AppendInt(buf, int64(p.Size), 10)
	buf = append(buf, '|')
	buf = append(buf, p.Level...)
	buf = append(buf, '|')
	buf = strconv.AppendBool(buf, p.SVG)
	buf = append(buf, '|')
	buf = strconv.AppendBool(buf, p.Padding)
	if !p.SVG {
		buf = append(buf, '|')
		buf = strconv.AppendInt(buf, int64(p.Format), 10)
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

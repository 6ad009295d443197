package qrserver

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// ErrInvalidQuery is returned for query parameters that cannot be parsed.
var ErrInvalidQuery = errors.New("invalid query parameter")

// PropsFromQuery builds props from query parameters, starting from
// qrcode.DefaultProps:
//
//	content  text to encode; present but empty is an error
//	size     pixels; the absolute value is used, 0 means default
//	level    L, M, Q or H
//	svg      boolean; the last value wins, so a hidden "false" field
//	         followed by a checkbox works
//	padding  boolean
//	format   png, jpeg, gif, bmp or tiff; implies svg=false unless svg is
//	         given explicitly
func PropsFromQuery(q url.Values) (qrcode.Props, error) {
	p := qrcode.DefaultProps()

	if q.Has("content") {
		p.Content = q.Get("content")
		if p.Content == "" {
			return p, qrcode.ErrEmptyContent
		}
	}

	if v := last(q, "size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("%w: %w: size=%q", ErrInvalidQuery, qrcode.ErrInvalidSize, v)
		}
		p.Size = size
	}

	if v := last(q, "level"); v != "" {
		level, err := qrcode.ParseLevel(v)
		if err != nil {
			return p, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}
		p.Level = level
	}

	if v := last(q, "format"); v != "" {
		format, err := qrcode.ParseFormat(v)
		if err != nil {
			return p, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}
		p.Format = format
		p.SVG = false
	}

	var err error
	if p.SVG, err = boolParam(q, "svg", p.SVG); err != nil {
		return p, err
	}
	if p.Padding, err = boolParam(q, "padding", p.Padding); err != nil {
		return p, err
	}

	return p.Normalize(), nil
}

func last(q url.Values, key string) string {
	vs := q[key]
	if len(vs) == 0 {
		return ""
	}
	return strings.TrimSpace(vs[len(vs)-1])
}

func boolParam(q url.Values, key string, def bool) (bool, error) {
	if !q.Has(key) {
		return def, nil
	}
	v := last(q, key)
	if v == "" || v == "on" {
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, key, v)
	}
	return b, nil
}

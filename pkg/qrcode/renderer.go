package qrcode

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/qrkit/core/logger"
)

// Result is a finished rendering.
type Result struct {
	Key         string
	ContentType string
	Body        []byte
	Props       Props
	Cached      bool
}

// Renderer turns Props into SVG or raster output.
//
// It remembers the last rendering: calling Render again with equal props
// returns the same result without re-encoding, and any changed prop triggers
// a full recomputation. An optional shared Cache sits behind that memo.
// Safe for concurrent use.
type Renderer struct {
	encoder Encoder
	cache   Cache
	log     *slog.Logger

	mu   sync.Mutex
	last *Result
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithEncoder replaces the default go-qrcode encoder.
func WithEncoder(e Encoder) RendererOption {
	return func(r *Renderer) {
		if e != nil {
			r.encoder = e
		}
	}
}

// WithCache adds a shared cache consulted after the in-memory memo.
func WithCache(c Cache) RendererOption {
	return func(r *Renderer) {
		r.cache = c
	}
}

// WithLogger sets the logger used for cache failures.
func WithLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRenderer creates a Renderer. Without options it uses the default encoder,
// no shared cache, and a discarding logger.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		encoder: defaultEncoder,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Modules encodes the content of p at its level.
func (r *Renderer) Modules(p Props) (Matrix, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m, err := r.encoder.Encode(p.Content, p.Level)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Render produces the output described by p. The returned Body is owned by
// the caller.
func (r *Renderer) Render(ctx context.Context, p Props) (Result, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	key := p.Key()

	r.mu.Lock()
	if r.last != nil && r.last.Key == key {
		res := *r.last
		r.mu.Unlock()
		res.Body = bytes.Clone(res.Body)
		res.Cached = true
		return res, nil
	}
	r.mu.Unlock()

	if r.cache != nil {
		body, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			r.log.WarnContext(ctx, "render cache lookup failed", logger.Key("key", key), logger.Error(err))
		} else if ok {
			res := Result{Key: key, ContentType: p.ContentType(), Body: body, Props: p, Cached: true}
			r.remember(res)
			return res, nil
		}
	}

	body, err := r.draw(p)
	if err != nil {
		return Result{}, err
	}
	res := Result{Key: key, ContentType: p.ContentType(), Body: body, Props: p}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, body); err != nil {
			r.log.WarnContext(ctx, "render cache store failed", logger.Key("key", key), logger.Error(err))
		}
	}
	r.remember(res)
	return res, nil
}

func (r *Renderer) draw(p Props) ([]byte, error) {
	m, err := r.Modules(p)
	if err != nil {
		return nil, err
	}

	opts := []Option{WithSize(p.Size), WithPadding(p.Padding)}
	var buf bytes.Buffer
	if p.SVG {
		if err := WriteSVG(&buf, m, opts...); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	img, err := Raster(m, opts...)
	if err != nil {
		return nil, err
	}
	if err := EncodeImage(&buf, img, p.Format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// remember keeps its own copy of the body so callers may modify theirs.
func (r *Renderer) remember(res Result) {
	res.Body = bytes.Clone(res.Body)
	res.Cached = false
	r.mu.Lock()
	r.last = &res
	r.mu.Unlock()
}

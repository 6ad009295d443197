package qrserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrkit/component"
	"github.com/dmitrymomot/qrkit/core/handler"
	"github.com/dmitrymomot/qrkit/core/logger"
	"github.com/dmitrymomot/qrkit/core/response"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// Publisher stores a rendering and returns its public URL.
// *s3.Storage implements it.
type Publisher interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// PathResponse is the body of GET /qr/path.
type PathResponse struct {
	Path  string       `json:"path"`
	Cells int          `json:"cells"`
	Size  int          `json:"size"`
	Level qrcode.Level `json:"level"`
}

// PublishResponse is the body of POST /qr/publish.
type PublishResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
}

// page renders the HTML form with the code for the query props. Invalid
// props are shown as an alert with the matching status code.
func (a *App) page(ctx *Context) handler.Response {
	p, err := ctx.Props()
	if err != nil {
		return a.pageError(p, err)
	}

	m, err := a.renderer.Modules(p)
	if err != nil {
		return a.pageError(p, err)
	}

	var code templ.Component
	if p.SVG {
		code = component.SVGRender(m, p.Size, p.Padding)
	} else {
		code = component.CanvasRender(m, p.Size, p.Padding)
	}
	return response.Templ(component.Page(p, code, ""))
}

func (a *App) pageError(p qrcode.Props, err error) handler.Response {
	herr := httpError(err)
	return response.TemplWithStatus(component.Page(p, nil, herr.Message), herr.Status)
}

// render serves the raw SVG or raster body.
func (a *App) render(ctx *Context) handler.Response {
	p, err := ctx.Props()
	if err != nil {
		return response.Error(httpError(err))
	}

	res, err := a.renderer.Render(ctx, p)
	if err != nil {
		return a.fail(ctx, "render", err)
	}

	return response.WithETag(
		response.WithCache(response.Blob(res.Body, res.ContentType), a.config.RenderMaxAge),
		res.Key,
	)
}

// path serves the compressed SVG path of the symbol as JSON.
func (a *App) path(ctx *Context) handler.Response {
	p, err := ctx.Props()
	if err != nil {
		return response.Error(httpError(err))
	}

	m, err := a.renderer.Modules(p)
	if err != nil {
		return a.fail(ctx, "path", err)
	}

	thickness := 0
	if p.Padding {
		thickness = 1
	}
	return response.JSON(PathResponse{
		Path:  qrcode.SVGPath(m, thickness),
		Cells: m.Size() + 2*thickness,
		Size:  p.Size,
		Level: p.Level,
	})
}

// publish renders the props and uploads the result. Responds 503 when no
// publisher is configured.
func (a *App) publish(ctx *Context) handler.Response {
	if a.publisher == nil {
		return response.Error(response.ErrServiceUnavailable.WithMessage("publishing is not configured"))
	}

	p, err := ctx.Props()
	if err != nil {
		return response.Error(httpError(err))
	}

	res, err := a.renderer.Render(ctx, p)
	if err != nil {
		return a.fail(ctx, "publish", err)
	}

	key := strings.TrimPrefix(a.config.PublishPrefix+res.Key+res.Props.Ext(), "/")
	url, err := a.publisher.Put(ctx, key, res.ContentType, res.Body)
	if err != nil {
		return a.fail(ctx, "publish", err)
	}

	a.logger.InfoContext(ctx, "render published",
		logger.Component("qrserver"),
		logger.Action("publish"),
		logger.Key("object", key),
	)
	return response.JSONWithStatus(PublishResponse{
		URL:         url,
		Key:         key,
		ContentType: res.ContentType,
	}, http.StatusCreated)
}

// preflight answers OPTIONS requests that carry no CORS preflight headers.
// Real preflights are answered by the CORS middleware.
func preflight(ctx *Context) handler.Response {
	ctx.ResponseWriter().Header().Set("Allow", "GET, HEAD, OPTIONS")
	return response.NoContent()
}

func (a *App) fail(ctx *Context, action string, err error) handler.Response {
	herr := httpError(err)
	if herr.Status >= http.StatusInternalServerError {
		a.logger.ErrorContext(ctx, "request failed",
			logger.Component("qrserver"),
			logger.Action(action),
			logger.Error(err),
		)
	}
	return response.Error(herr)
}

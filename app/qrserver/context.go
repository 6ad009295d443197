package qrserver

import (
	"errors"
	"fmt"
	"maps"
	"net/http"

	"github.com/dmitrymomot/qrkit/core/router"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// Context is the request context of the QR service.
type Context struct {
	*router.Context
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{Context: router.NewContext(w, r)}
}

// Props parses rendering props from the query string. For POST requests
// url-encoded form fields are read as well and take precedence.
func (c *Context) Props() (qrcode.Props, error) {
	req := c.Request()
	values := req.URL.Query()
	if req.Method == http.MethodPost {
		if err := req.ParseForm(); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return qrcode.Props{}, err
			}
			return qrcode.Props{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		maps.Copy(values, req.PostForm)
	}
	return PropsFromQuery(values)
}

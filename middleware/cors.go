package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrkit/core/handler"
)

// CORSConfig configures cross-origin access to rendered codes.
type CORSConfig struct {
	// Skip allows bypassing CORS handling for specific requests
	Skip func(ctx handler.Context) bool

	// AllowOrigins lists allowed origins. Empty or "*" allows every origin.
	AllowOrigins []string

	// AllowMethods lists methods accepted in preflight requests (default: GET, HEAD)
	AllowMethods []string

	// AllowHeaders lists request headers accepted in preflight requests
	AllowHeaders []string

	// ExposeHeaders lists response headers readable by scripts (default: ETag, X-Request-ID)
	ExposeHeaders []string

	// MaxAge is how long browsers may cache a preflight result
	MaxAge int
}

// CORS allows any origin to fetch with GET and HEAD.
func CORS[C handler.Context]() handler.Middleware[C] {
	return CORSWithConfig[C](CORSConfig{})
}

// CORSWithConfig adds Access-Control headers to responses for allowed
// origins and answers preflight requests itself: 204 when the origin and
// requested method are allowed, 403 otherwise.
func CORSWithConfig[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{http.MethodGet, http.MethodHead}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"Accept", "If-None-Match", "X-Request-ID"}
	}
	if cfg.ExposeHeaders == nil {
		cfg.ExposeHeaders = []string{"ETag", "X-Request-ID"}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ",")
	wildcard := len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*")

	allowOrigin := func(origin string) (string, bool) {
		switch {
		case wildcard:
			return "*", true
		case origin != "" && slices.Contains(cfg.AllowOrigins, origin):
			return origin, true
		}
		return "", false
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			origin, allowed := allowOrigin(req.Header.Get("Origin"))

			if method := req.Header.Get("Access-Control-Request-Method"); req.Method == http.MethodOptions && method != "" {
				if !allowed || !slices.Contains(cfg.AllowMethods, method) {
					return func(w http.ResponseWriter, r *http.Request) error {
						w.WriteHeader(http.StatusForbidden)
						return nil
					}
				}
				return func(w http.ResponseWriter, r *http.Request) error {
					h := w.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Allow-Methods", allowMethods)
					if r.Header.Get("Access-Control-Request-Headers") != "" {
						h.Set("Access-Control-Allow-Headers", allowHeaders)
					}
					if cfg.MaxAge > 0 {
						h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
					}
					h.Add("Vary", "Origin")
					h.Add("Vary", "Access-Control-Request-Method")
					h.Add("Vary", "Access-Control-Request-Headers")
					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}

			response := next(ctx)
			if !allowed || response == nil {
				return response
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				if exposeHeaders != "" {
					h.Set("Access-Control-Expose-Headers", exposeHeaders)
				}
				h.Add("Vary", "Origin")
				return response(w, r)
			}
		}
	}
}

package response

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/qrkit/core/handler"
)

// WithCache adds Cache-Control headers. A positive maxAge allows public
// caching for that long; anything else disables caching.
func WithCache(response handler.Response, maxAge time.Duration) handler.Response {
	if response == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		if maxAge > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
		}
		return response(w, r)
	}
}

// WithETag sets a strong ETag and answers 304 Not Modified when the request's
// If-None-Match already names it.
func WithETag(response handler.Response, tag string) handler.Response {
	if response == nil || tag == "" {
		return response
	}
	etag := `"` + tag + `"`
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("ETag", etag)
		if matchETag(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return nil
		}
		return response(w, r)
	}
}

func matchETag(header, etag string) bool {
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

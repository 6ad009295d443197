package response

import (
	"net/http"

	"github.com/dmitrymomot/qrkit/core/handler"
)

// String creates a text/plain response with 200 OK status.
func String(content string) handler.Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus creates a text/plain response with a custom status code.
func StringWithStatus(content string, status int) handler.Response {
	return write([]byte(content), "text/plain; charset=utf-8", status)
}

// HTML creates a text/html response from a ready-made document.
func HTML(content string) handler.Response {
	return write([]byte(content), "text/html; charset=utf-8", http.StatusOK)
}

// Blob creates a response with an arbitrary body and content type, e.g. a
// rendered image.
func Blob(body []byte, contentType string) handler.Response {
	return write(body, contentType, http.StatusOK)
}

// BlobWithStatus is Blob with a custom status code.
func BlobWithStatus(body []byte, contentType string, status int) handler.Response {
	return write(body, contentType, status)
}

// NoContent creates a 204 No Content response.
func NoContent() handler.Response {
	return Status(http.StatusNoContent)
}

// Status creates an empty response with the given status code.
func Status(code int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if code == 0 {
			code = http.StatusOK
		}
		w.WriteHeader(code)
		return nil
	}
}

// Error propagates err to the router's error handler without writing
// anything itself.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}

func write(body []byte, contentType string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if len(body) == 0 || r.Method == http.MethodHead {
			return nil
		}
		_, err := w.Write(body)
		return err
	}
}

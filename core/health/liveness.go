package health

import (
	"github.com/dmitrymomot/qrkit/core/handler"
	"github.com/dmitrymomot/qrkit/core/response"
)

// Liveness always answers "ALIVE" with 200 OK.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

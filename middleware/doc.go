// Package middleware provides the HTTP middleware used by the QR service:
// request IDs, structured request logging, security headers, CORS and
// request body limits.
//
//	r := router.New[*router.Context]()
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//	)
//
// RequestID must run before Logging for log entries to carry the ID.
// RequestIDExtractor plugs the ID into any logger built with core/logger.
//
// The others are usually applied per route with handler.Chain:
//
//	r.Get("/qr", handler.Chain(render, middleware.CORS[*router.Context]()))
package middleware

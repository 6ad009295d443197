// Package router is a small generic HTTP router on top of net/http.ServeMux.
//
// Patterns use the standard library syntax ("GET /qr/{id}"); path values are
// available through Context.Param. Handlers return a handler.Response, and
// any error from the handler chain is rendered by the ErrorHandler. Panics in
// handlers are recovered and reported as PanicError.
//
//	r := router.New[*router.Context](
//		router.WithLogger[*router.Context](log),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Get("/qr", handlers.Render)
//	http.ListenAndServe(":8080", r)
package router

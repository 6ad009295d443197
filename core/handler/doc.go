// Package handler defines the request-processing types shared by the router,
// the response helpers and the middleware.
//
// A HandlerFunc receives a typed request context and returns a Response; the
// Response does the actual writing and may fail, in which case the router's
// ErrorHandler takes over. Middleware wraps HandlerFunc values:
//
//	func QR(r *qrcode.Renderer) handler.HandlerFunc[*router.Context] {
//		return func(ctx *router.Context) handler.Response {
//			res, err := r.Render(ctx, props)
//			if err != nil {
//				return response.Error(err)
//			}
//			return response.Blob(res.Body, res.ContentType)
//		}
//	}
package handler

// Package response builds handler.Response values for the common cases:
// text, HTML, JSON, binary blobs and templ components, plus HTTPError for
// structured error bodies and decorators that add caching headers.
//
//	func render(ctx handler.Context) handler.Response {
//		res, err := renderer.Render(ctx, props)
//		if err != nil {
//			return response.Error(response.ErrBadRequest.WithError(err))
//		}
//		return response.WithETag(response.Blob(res.Body, res.ContentType), res.Key)
//	}
//
// Errors returned by a Response are rendered by the router's error handler.
package response

// Package qrserver is the HTTP service around pkg/qrcode.
//
// Routes:
//
//	GET  /              HTML form with the rendered code
//	GET  /qr            raw SVG or raster body, with ETag and Cache-Control
//	GET  /qr/path       {"path", "cells", "size", "level"} as JSON
//	OPTIONS /qr, /qr/path  CORS preflight
//	POST /qr/publish    render and upload, 201 {"url", "key", "content_type"}
//	GET  /health/live
//	GET  /health/ready
//
// All rendering routes read props from the query string (see PropsFromQuery);
// publish also accepts a url-encoded form body up to PublishBodyLimit bytes.
// Invalid input answers 400, an oversized body 413, content that does not fit
// a symbol 422, and publishing without storage 503.
package qrserver

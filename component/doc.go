// Package component provides templ components that render QR codes inline
// in HTML pages.
//
// QRCode is the entry point: it encodes the content at the requested level
// and delegates to SVGRender (inline vector markup) or CanvasRender (a raster
// image embedded as a data URI), depending on Props.SVG.
//
//	templ.Handler(component.QRCode(qrcode.Props{Content: url, Size: 200, SVG: true}))
package component

package middleware

import (
	"maps"

	"github.com/dmitrymomot/qrkit/core/handler"
)

// SecurityHeadersConfig lists the security headers to set. Empty values are
// not sent.
type SecurityHeadersConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	ContentTypeOptions        string
	FrameOptions              string
	ContentSecurityPolicy     string
	ReferrerPolicy            string
	StrictTransportSecurity   string
	CrossOriginResourcePolicy string

	// CustomHeaders are set after the fields above and may override them.
	CustomHeaders map[string]string

	// IsDevelopment drops Strict-Transport-Security.
	IsDevelopment bool
}

var (
	// PageSecurity suits the HTML page: inline SVG and data-URI images are
	// allowed, scripts and framing are not.
	PageSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "DENY",
		ContentSecurityPolicy:     "default-src 'none'; img-src 'self' data:; style-src 'unsafe-inline'; form-action 'self'; frame-ancestors 'none'; base-uri 'none'",
		ReferrerPolicy:            "no-referrer",
		StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
		CrossOriginResourcePolicy: "same-origin",
	}

	// ImageSecurity suits raw renders that other sites embed. SVG bodies get
	// a sandboxing CSP so they cannot run scripts when opened directly.
	ImageSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		ContentSecurityPolicy:     "default-src 'none'; style-src 'unsafe-inline'; sandbox",
		ReferrerPolicy:            "no-referrer",
		StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
		CrossOriginResourcePolicy: "cross-origin",
	}
)

// SecurityHeaders sets PageSecurity headers.
func SecurityHeaders[C handler.Context]() handler.Middleware[C] {
	return SecurityHeadersWithConfig[C](PageSecurity)
}

// SecurityHeadersWithConfig sets the configured headers on every response,
// including error responses.
func SecurityHeadersWithConfig[C handler.Context](cfg SecurityHeadersConfig) handler.Middleware[C] {
	if cfg.IsDevelopment {
		cfg.StrictTransportSecurity = ""
	}

	headers := make(map[string]string, 6+len(cfg.CustomHeaders))
	for name, value := range map[string]string{
		"X-Content-Type-Options":       cfg.ContentTypeOptions,
		"X-Frame-Options":              cfg.FrameOptions,
		"Content-Security-Policy":      cfg.ContentSecurityPolicy,
		"Referrer-Policy":              cfg.ReferrerPolicy,
		"Strict-Transport-Security":    cfg.StrictTransportSecurity,
		"Cross-Origin-Resource-Policy": cfg.CrossOriginResourcePolicy,
	} {
		if value != "" {
			headers[name] = value
		}
	}
	maps.Copy(headers, cfg.CustomHeaders)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			h := ctx.ResponseWriter().Header()
			for name, value := range headers {
				h.Set(name, value)
			}
			return next(ctx)
		}
	}
}

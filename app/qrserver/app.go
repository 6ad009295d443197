package qrserver

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrkit/core/config"
	"github.com/dmitrymomot/qrkit/core/handler"
	"github.com/dmitrymomot/qrkit/core/health"
	"github.com/dmitrymomot/qrkit/core/logger"
	"github.com/dmitrymomot/qrkit/core/router"
	"github.com/dmitrymomot/qrkit/core/server"
	"github.com/dmitrymomot/qrkit/middleware"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// App wires the QR renderer to HTTP.
type App struct {
	config    Config
	router    *router.Router[*Context]
	server    *server.Server
	renderer  *qrcode.Renderer
	cache     qrcode.Cache
	publisher Publisher
	checks    []health.Check
	logger    *slog.Logger
}

// AppOption configures an App.
type AppOption func(*App) error

// NewApp loads Config from the environment, applies opts and registers the
// routes. Without WithRenderer the renderer uses the cache given by
// WithCache, or an in-process LRU of RenderCacheSize entries.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: logger.New(),
	}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.renderer == nil {
		c := app.cache
		if c == nil {
			c = qrcode.NewMemoryCache(app.config.RenderCacheSize)
		}
		app.renderer = qrcode.NewRenderer(
			qrcode.WithCache(c),
			qrcode.WithLogger(app.logger),
		)
	}

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	app.router = router.New(
		router.WithContextFactory(newContext),
		router.WithLogger[*Context](app.logger),
		router.WithMiddleware(
			middleware.RequestID[*Context](),
			middleware.LoggingWithLogger[*Context](app.logger),
		),
	)
	app.routes()

	return app, nil
}

func (a *App) routes() {
	page := middleware.SecurityHeadersWithConfig[*Context](a.securityConfig(middleware.PageSecurity))
	image := middleware.SecurityHeadersWithConfig[*Context](a.securityConfig(middleware.ImageSecurity))
	cors := middleware.CORSWithConfig[*Context](middleware.CORSConfig{
		AllowOrigins: a.config.CORSAllowOrigins,
		MaxAge:       3600,
	})
	bodyLimit := middleware.BodyLimitWithSize[*Context](a.config.PublishBodyLimit)

	a.router.Get("/{$}", handler.Chain(a.page, page))
	a.router.Get("/qr", handler.Chain(a.render, cors, image))
	a.router.Method(http.MethodOptions, "/qr", handler.Chain(preflight, cors))
	a.router.Get("/qr/path", handler.Chain(a.path, cors))
	a.router.Method(http.MethodOptions, "/qr/path", handler.Chain(preflight, cors))
	a.router.Post("/qr/publish", handler.Chain(a.publish, bodyLimit))
	a.router.Get("/health/live", health.Liveness[*Context])
	a.router.Get("/health/ready", health.Readiness[*Context](a.logger, a.readinessChecks()...))
}

// securityConfig drops HSTS outside production-like environments.
func (a *App) securityConfig(cfg middleware.SecurityHeadersConfig) middleware.SecurityHeadersConfig {
	cfg.IsDevelopment = a.config.Env == "development"
	return cfg
}

func (a *App) readinessChecks() []health.Check {
	checks := []health.Check{{Name: "encoder", Fn: a.encoderCheck}}
	return append(checks, a.checks...)
}

// encoderCheck encodes the default content to prove the encoder works.
func (a *App) encoderCheck(context.Context) error {
	_, err := a.renderer.Modules(qrcode.DefaultProps())
	return err
}

// Handler returns the HTTP handler with all routes.
func (a *App) Handler() http.Handler {
	return a.router
}

// Routes lists the registered routes.
func (a *App) Routes() []router.Route {
	return a.router.Routes()
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.router))
	return g.Wait()
}

// WithConfig replaces the configuration loaded from the environment.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return ErrNilLogger
		}
		app.logger = logger
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return ErrNilServer
		}
		app.server = server
		return nil
	}
}

func WithRenderer(renderer *qrcode.Renderer) AppOption {
	return func(app *App) error {
		if renderer == nil {
			return ErrNilRenderer
		}
		app.renderer = renderer
		return nil
	}
}

// WithCache sets the shared render cache, e.g. a qrcode.RedisCache.
func WithCache(c qrcode.Cache) AppOption {
	return func(app *App) error {
		app.cache = c
		return nil
	}
}

// WithPublisher enables POST /qr/publish.
func WithPublisher(p Publisher) AppOption {
	return func(app *App) error {
		if p == nil {
			return ErrNilPublisher
		}
		app.publisher = p
		return nil
	}
}

// WithHealthChecks adds readiness checks for external dependencies.
func WithHealthChecks(checks ...health.Check) AppOption {
	return func(app *App) error {
		app.checks = append(app.checks, checks...)
		return nil
	}
}

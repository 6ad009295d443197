package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/qrkit/app/qrserver"
	"github.com/dmitrymomot/qrkit/core/config"
	"github.com/dmitrymomot/qrkit/core/health"
	"github.com/dmitrymomot/qrkit/core/logger"
	"github.com/dmitrymomot/qrkit/integration/database/redis"
	"github.com/dmitrymomot/qrkit/integration/storage/s3"
	"github.com/dmitrymomot/qrkit/middleware"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg qrserver.Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.ForEnv(cfg.Env, cfg.AppName),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	)

	opts := []qrserver.AppOption{
		qrserver.WithConfig(cfg),
		qrserver.WithLogger(log),
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Error("Failed to connect to redis", logger.Component("redis"), logger.Error(err))
			os.Exit(1)
		}
		defer func() { _ = client.Close() }()

		opts = append(opts,
			qrserver.WithCache(qrcode.NewRedisCache(client, cfg.Redis.CacheTTL)),
			qrserver.WithHealthChecks(health.Check{Name: "redis", Fn: redis.Healthcheck(client)}),
		)
	}

	if cfg.S3.Enabled() {
		store, err := s3.New(ctx, cfg.S3)
		if err != nil {
			log.Error("Failed to init storage", logger.Component("s3"), logger.Error(err))
			os.Exit(1)
		}
		opts = append(opts,
			qrserver.WithPublisher(store),
			qrserver.WithHealthChecks(health.Check{Name: "s3", Fn: store.Healthcheck()}),
		)
	}

	app, err := qrserver.NewApp(opts...)
	if err != nil {
		log.Error("Failed to create app", logger.Component("app"), logger.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}

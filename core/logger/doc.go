// Package logger builds slog loggers and provides attribute helpers for
// common fields.
//
//	log := logger.New(
//		logger.ForEnv(cfg.Env, "qrserver"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//	log.Info("rendered", logger.Component("qrcode"), logger.Duration(time.Since(start)))
//
// Environment presets: WithDevelopment (debug, text), WithStaging and
// WithProduction (info, JSON). WithContextValue and WithContextExtractors add
// request-scoped attributes to every *Context call.
package logger

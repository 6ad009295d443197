// Package health provides liveness and readiness handlers.
//
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log,
//		health.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//		health.Check{Name: "encoder", Fn: app.EncoderCheck},
//	))
//
// Readiness runs all checks concurrently, each bounded by CheckTimeout.
package health

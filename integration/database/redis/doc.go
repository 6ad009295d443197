// Package redis connects to Redis with retries and exposes a readiness
// probe. The QR service uses the client as a shared render cache.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	cache := qrcode.NewRedisCache(client, cfg.CacheTTL)
//	ready := health.Check{Name: "redis", Fn: redis.Healthcheck(client)}
//
// Connect accepts redis:// and rediss:// URLs. It retries the initial ping
// RetryAttempts times, RetryInterval apart, all within ConnectTimeout.
// Errors wrap ErrEmptyConnectionURL, ErrFailedToParseRedisConnString or
// ErrRedisNotReady.
package redis

package qrserver

import (
	"time"

	"github.com/dmitrymomot/qrkit/core/server"
	"github.com/dmitrymomot/qrkit/integration/database/redis"
	"github.com/dmitrymomot/qrkit/integration/storage/s3"
)

// Config is the service configuration. Redis and S3 are optional and only
// used when their URL or bucket is set.
type Config struct {
	Server server.Config
	Redis  redis.Config
	S3     s3.Config

	AppName  string `env:"APP_NAME" envDefault:"qrkit"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// RenderCacheSize is the capacity of the in-process render cache used
	// when Redis is not configured.
	RenderCacheSize int `env:"RENDER_CACHE_SIZE" envDefault:"512"`
	// RenderMaxAge is the Cache-Control max-age of raw renders.
	RenderMaxAge time.Duration `env:"RENDER_MAX_AGE" envDefault:"24h"`
	// PublishPrefix is prepended to object keys of published renders.
	PublishPrefix string `env:"PUBLISH_PREFIX" envDefault:"qr/"`
	// PublishBodyLimit caps the form body accepted by POST /qr/publish.
	PublishBodyLimit int64 `env:"PUBLISH_BODY_LIMIT" envDefault:"65536"`
	// CORSAllowOrigins lists origins allowed to fetch /qr and /qr/path.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

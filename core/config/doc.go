// Package config loads typed configuration from environment variables.
//
// Fields are mapped with github.com/caarlos0/env tags; a .env file in the
// working directory is loaded once via github.com/joho/godotenv. Each struct
// type is parsed once and cached:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning the error.
package config

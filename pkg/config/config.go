// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all service configuration.
type Config struct {
	Addr              string        `env:"USERS_ADDR" envDefault:":8080"`
	TLSCert           string        `env:"USERS_TLS_CERT"`
	TLSKey            string        `env:"USERS_TLS_KEY"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	OtelHost         string  `env:"OTEL_HOST"`
	TraceProbability float64 `env:"OTEL_PROBABILITY" envDefault:"1.0"`

	RedisAddr     string `env:"REDIS_ADDR"`
	EventsChannel string `env:"EVENTS_CHANNEL" envDefault:"userregistry.events"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// TLS reports whether both a certificate and a key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.TraceProbability < 0 || cfg.TraceProbability > 1 {
		return Config{}, fmt.Errorf("OTEL_PROBABILITY must be within [0,1], got %v", cfg.TraceProbability)
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, fmt.Errorf("USERS_TLS_CERT and USERS_TLS_KEY must be set together")
	}
	return cfg, nil
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Session  SessionConfig
	Redis    RedisConfig
	Cache    CacheConfig
}

type UpstreamConfig struct {
	// BaseURL is the root of the external Zoo Arcadia API.
	BaseURL string        `env:"UPSTREAM_BASE_URL, default=https://zoo-api-2ivv.onrender.com/api/v1"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT,  default=15s"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE, default=arcadia_session"`
	TTL        time.Duration `env:"SESSION_TTL,    default=24h"`
	// Store selects where credential tokens persist: "redis" or "memory".
	Store string `env:"SESSION_STORE, default=memory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CacheConfig struct {
	TTL time.Duration `env:"CACHE_TTL, default=60s"`
	// RefreshInterval drives the background cache warmers; 0 disables them.
	RefreshInterval time.Duration `env:"CACHE_REFRESH_INTERVAL, default=2m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

package app

import (
	"github.com/kelu/tote/app/database"
	"github.com/kelu/tote/app/markets"
	"github.com/kelu/tote/internal/conf"
)

// Config is the top-level application configuration, populated from the
// environment with an optional config file for local development.
type Config struct {
	DB      database.Config
	Markets markets.Config

	AppHost string `env:"APP_HOST" env-default:"localhost"`
	AppPort string `env:"APP_PORT" env-default:"8080"`
	Env     string `env:"APP_ENV" env-default:"development"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// CacheBackend selects the odds cache: "memory" or "redis".
	CacheBackend  string `env:"CACHE_BACKEND" env-default:"memory"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	// PublishEvents mirrors market events onto the redis channel so
	// out-of-process consumers see them too.
	PublishEvents bool `env:"PUBLISH_REDIS_EVENTS"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := conf.NewLoader().Load(c)
	return c, err
}

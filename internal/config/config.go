package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Finny Policy"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"finnypolicy"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Redis struct {
		// Addr enables the policy config cache when set.
		Addr     string        `envconfig:"REDIS_ADDR"`
		Password string        `envconfig:"REDIS_PASSWORD"`
		DB       int           `envconfig:"REDIS_DB" default:"0"`
		TTL      time.Duration `envconfig:"REDIS_TTL" default:"10m"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"*"`
	}

	Auth struct {
		// JWTSecret enables bearer-token authentication when set.
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	Violations struct {
		Concurrency   int    `envconfig:"VIOLATIONS_CONCURRENCY" default:"4"`
		DefaultLocale string `envconfig:"VIOLATIONS_DEFAULT_LOCALE" default:"en"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Violations.Concurrency < 1 {
		return nil, fmt.Errorf("VIOLATIONS_CONCURRENCY must be positive, got %d", cfg.Violations.Concurrency)
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
)

type Config struct {
	App struct {
		Name    string  `envconfig:"APP_NAME" default:"Cashbook"`
		Port    int     `envconfig:"PORT" default:"8080"`
		Backend Backend `envconfig:"BACKEND" default:"postgres"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"cashbook"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	Auth struct {
		Secret string `envconfig:"JWT_SECRET" required:"true"`
		Issuer string `envconfig:"JWT_ISSUER" default:"cashbook"`
	}

	Skautis struct {
		URL       string  `envconfig:"SKAUTIS_URL"`
		Token     string  `envconfig:"SKAUTIS_TOKEN"`
		RateLimit float64 `envconfig:"SKAUTIS_RATE_LIMIT" default:"10"`
		Burst     int     `envconfig:"SKAUTIS_BURST" default:"5"`
	}

	AMQP struct {
		URL      string `envconfig:"AMQP_URL"`
		Exchange string `envconfig:"AMQP_EXCHANGE" default:"cashbook"`
		Queue    string `envconfig:"AMQP_QUEUE" default:"chit_changed"`
	}

	Cache struct {
		Size int           `envconfig:"CACHE_SIZE" default:"256"`
		TTL  time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	}

	Telemetry struct {
		OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
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

	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}

	switch cfg.App.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.App.Backend)
	}

	return &cfg, nil
}

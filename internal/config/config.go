package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Finwell"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"finwell"`
	}

	Auth struct {
		// JWTSecret verifies bearer tokens issued by the external
		// auth service.
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	Upload struct {
		// MaxBytes caps the accepted statement file size (10 MiB).
		MaxBytes int64 `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
		// Timeout bounds PDF text extraction; a statement that takes
		// longer fails as a whole with nothing persisted.
		Timeout time.Duration `envconfig:"UPLOAD_TIMEOUT" default:"30s"`
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

	return &cfg, nil
}

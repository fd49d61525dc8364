package config

import (
	"crypto/rand"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"fyyur"`

	Debug     bool   `env:"DEBUG" envDefault:"false"`
	SecretKey string `env:"SECRET_KEY"`
	Port      string `env:"PORT" envDefault:"8080"`
	LogFile   string `env:"LOG_FILE" envDefault:"error.log"`

	// Secret is SecretKey as bytes, or 32 random bytes when no key is
	// configured. Flash cookies then do not survive a restart.
	Secret []byte
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.SecretKey != "" {
		cfg.Secret = []byte(cfg.SecretKey)
	} else {
		cfg.Secret = make([]byte, 32)
		if _, err := rand.Read(cfg.Secret); err != nil {
			return nil, fmt.Errorf("generate secret: %w", err)
		}
	}

	return &cfg, nil
}

// DSN returns DATABASE_URL when set, else a key/value DSN built from the
// DB_* variables.
func (cfg *Config) DSN() string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}

// Package config loads process settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"io/fs"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"5000" validate:"required,numeric"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"loglevel"`

	GoogleBooksKey  string        `env:"GOOGLE_BOOKS_API_KEY"`
	GoogleBooksURL  string        `env:"GOOGLE_BOOKS_URL" envDefault:"https://www.googleapis.com/books/v1" validate:"url"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s" validate:"gte=0"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5713,https://literae-ngdw.vercel.app" validate:"min=1,dive,url"`

	// Empty keeps every store in memory.
	DatabaseDSN string `env:"DATABASE_DSN"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsToken   string `env:"METRICS_TOKEN"`

	// Login attempts per IP per minute; 0 turns the limiter off.
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT" envDefault:"30" validate:"gte=0"`
}

func (c Config) Addr() string { return ":" + c.Port }

type Option func(*options)

type options struct {
	dotEnvFiles []string
}

// WithDotEnv replaces the default ".env" lookup. Missing files are ignored.
func WithDotEnv(files ...string) Option {
	return func(o *options) { o.dotEnvFiles = files }
}

func Load(opts ...Option) (Config, error) {
	o := &options{dotEnvFiles: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	for _, f := range o.dotEnvFiles {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func validate(cfg Config) error {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	return v.Struct(cfg)
}

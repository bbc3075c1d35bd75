package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/AlenaMolokova/checkout/internal/constants"
)

type Config struct {
	BackendAddr       string        `env:"CHECKOUT_API_ADDRESS"`
	LookupDelay       time.Duration `env:"LOOKUP_DELAY"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel          string        `env:"LOG_LEVEL"`
	RemoteFieldChecks bool          `env:"REMOTE_FIELD_CHECKS"`
}

// NewConfig resolves settings from defaults, then flags, then the
// environment. A .env file in the working directory is loaded first and never
// overrides variables that are already set.
func NewConfig(args []string) (*Config, error) {
	cfg := &Config{
		BackendAddr:    constants.DefaultBackendAddr,
		LookupDelay:    constants.DefaultLookupDelay,
		RequestTimeout: constants.DefaultRequestTimeout,
		LogLevel:       constants.DefaultLogLevel,
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	flags := flag.NewFlagSet("checkout", flag.ContinueOnError)
	flags.StringVar(&cfg.BackendAddr, "r", cfg.BackendAddr, "checkout API address")
	flags.DurationVar(&cfg.LookupDelay, "d", cfg.LookupDelay, "quiet period before a remote lookup")
	flags.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "backend request timeout")
	flags.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	flags.BoolVar(&cfg.RemoteFieldChecks, "c", cfg.RemoteFieldChecks, "confirm tax ID and card with the backend")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("config: failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.BackendAddr)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: backend address %q must be an absolute URL", c.BackendAddr)
	}
	if c.LookupDelay <= 0 {
		return errors.New("config: lookup delay must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: request timeout must be positive")
	}
	return nil
}

// Package config loads process configuration for the ghcnd tool.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all process settings.
type Config struct {
	// BaseURL is the NCEI Access Data Service endpoint.
	BaseURL string `koanf:"base_url"`

	// RequestTimeout bounds a single upstream request.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the handler: json or text.
	LogFormat string `koanf:"log_format"`
}

// defaults returns a Config with every field at its default value.
func defaults() *Config {
	return &Config{
		BaseURL:        "https://www.ncei.noaa.gov/access/services/data/v1",
		RequestTimeout: 30 * time.Second,
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables. Precedence (low -> high):
//  1. defaults
//  2. file (YAML) if GHCND_CONFIG is set
//  3. env (prefix GHCND_, e.g. GHCND_BASE_URL -> base_url)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("GHCND_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("GHCND_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "ghcnd_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base_url must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("request_timeout must be positive")
	}
	return cfg, nil
}

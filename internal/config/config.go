// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

// Package config loads the placesearch CLI configuration
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kkyr/fig"
)

const configEnv = "PLACESEARCH"

// Config represents the placesearch CLI configuration structure.
type Config struct {
	// BearerToken is the API credential used to authorize requests
	BearerToken string     `fig:"bearer_token"`
	LogLevel    slog.Level `fig:"loglevel" default:"0"`

	HTTP struct {
		Timeout  time.Duration `fig:"timeout" default:"10s"`
		RetryMax int           `fig:"retry_max" default:"3"`
	} `fig:"http"`

	RateLimit struct {
		// RequestsPerSecond paces outgoing requests client-side
		RequestsPerSecond float64 `fig:"requests_per_second" default:"1"`
		Burst             int     `fig:"burst" default:"1"`
	} `fig:"ratelimit"`
}

// New returns a Config with defaults and environment overrides applied
func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// NewFromFile returns a Config read from the given file
func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// Validate checks the Config for invalid values
func (c *Config) Validate() error {
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("invalid http timeout: %s", c.HTTP.Timeout)
	}
	if c.HTTP.RetryMax < 0 {
		return fmt.Errorf("invalid http retry_max: %d", c.HTTP.RetryMax)
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("invalid ratelimit requests_per_second: %f", c.RateLimit.RequestsPerSecond)
	}
	if c.RateLimit.Burst < 1 {
		return fmt.Errorf("invalid ratelimit burst: %d", c.RateLimit.Burst)
	}

	return nil
}

// Package config assembles the runtime settings of the vault CLI from
// defaults, environment variables, an optional JSON file, and command-line
// flags, in that order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the vault CLI.
//
// Fields:
//   - APIBaseURL: base URL of the vault API, e.g. "https://func-example.azurewebsites.net/api".
//   - RequestTimeout: applied to every request including the storage write.
//   - VerifyObjectKey: abort an upload whose ticket names an unexpected key.
//   - LogLevel: "debug", "info", "warn" or "error".
type Config struct {
	APIBaseURL      string        `env:"WPCLOUD_API_BASE"`
	RequestTimeout  time.Duration `env:"WPCLOUD_REQUEST_TIMEOUT"`
	VerifyObjectKey bool          `env:"WPCLOUD_VERIFY_OBJECT_KEY"`
	LogLevel        string        `env:"WPCLOUD_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults. The base URL matches a
// locally running Azure Functions host.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:7071/api"
	c.RequestTimeout = 30 * time.Second
	c.VerifyObjectKey = true
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given via -c/-config) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := parseJson(cfg, jsonConfigPath()); err != nil {
		return nil, err
	}
	parseFlags(cfg)

	return cfg, nil
}

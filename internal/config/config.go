// Package config loads service configuration from the environment, with an
// optional YAML file for deployments that prefer checked-in settings.
package config

import (
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string `env:"SERVER_HOST,default=0.0.0.0" yaml:"host"`
	Port int    `env:"SERVER_PORT,default=5000" yaml:"port"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL,default=info" yaml:"level"`
	Format string `env:"LOG_FORMAT,default=text" yaml:"format"`
}

// RateLimitConfig holds per-client request throttling settings. Disabled by
// default; the API surface behaves identically with it off.
type RateLimitConfig struct {
	Enabled           bool `env:"RATE_LIMIT_ENABLED,default=false" yaml:"enabled"`
	RequestsPerSecond int  `env:"RATE_LIMIT_RPS,default=20" yaml:"requests_per_second"`
	Burst             int  `env:"RATE_LIMIT_BURST,default=40" yaml:"burst"`
}

// Config is the root configuration object.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Load builds the configuration. When CONFIG_FILE points at a YAML file the
// file is authoritative; otherwise settings come from the environment with
// the defaults baked into the struct tags.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return LoadFromFile(path)
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

// LoadFromFile parses configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}

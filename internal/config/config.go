// Package config loads the optional YAML settings file of the rtftext
// command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the settings file path.
const EnvVar = "RTFTEXT_CONFIG"

// Config holds command settings.
type Config struct {
	TokenBuffer     int    `yaml:"token_buffer"`
	DefaultCodepage int    `yaml:"default_codepage"`
	OutputExtension string `yaml:"output_extension"`
	LogLevel        string `yaml:"log_level"`
}

// Default returns the settings used when no file is configured.
func Default() Config {
	return Config{
		TokenBuffer:     64,
		DefaultCodepage: 1252,
		OutputExtension: ".txt",
		LogLevel:        "info",
	}
}

// Load reads the file named by RTFTEXT_CONFIG. With the variable unset it
// returns the defaults.
func Load() (Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads settings from path. Keys missing from the file keep their
// default values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings over the defaults and validates them.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.TokenBuffer < 0 {
		errs = append(errs, fmt.Errorf("token_buffer must be >= 0, got %d", c.TokenBuffer))
	}
	if c.DefaultCodepage <= 0 {
		errs = append(errs, fmt.Errorf("default_codepage must be positive, got %d", c.DefaultCodepage))
	}
	if !strings.HasPrefix(c.OutputExtension, ".") {
		errs = append(errs, fmt.Errorf("output_extension must start with '.', got %q", c.OutputExtension))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level converts LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

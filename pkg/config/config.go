// Package config loads the settings for the gobpt embedding demo: the
// tree's order and optional node budget, and the HTTP shell's bind
// address, following pkg/config/config.go's LoadConfig/DefaultConfig
// shape.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config holds everything cmd/gobpt needs to stand up an Index and an
// HTTP server around it.
type Config struct {
	Bind       string  `yaml:"bind"`
	Order      int     `yaml:"order"`
	NodeBudget int     `yaml:"node_budget"`
	SentryDSN  string  `yaml:"sentry_dsn"`
	Logging    Logging `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the settings cmd/gobpt falls back to when no
// config file is given.
func DefaultConfig() *Config {
	return &Config{
		Bind:       ":8080",
		Order:      64,
		NodeBudget: 0,
		Logging:    Logging{Level: "info"},
	}
}

// LoadConfig loads configuration from the specified path. A missing
// file is not an error: callers get DefaultConfig back.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "config: invalid path")
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", configPath)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", configPath)
	}
	if config.Order < 3 {
		return nil, errors.Newf("config: order must be >= 3, got %d", config.Order)
	}
	return config, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return errors.Wrap(err, "config: create directory")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "config: marshal")
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return errors.Wrap(err, "config: write file")
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration path for the
// current platform.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./gobpt.yaml"
	}
	return filepath.Join(homeDir, ".config", "gobpt", "config.yaml")
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

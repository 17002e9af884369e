// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the server configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Auth
	ProxySecret        string `json:"proxy_secret,omitempty"`         // Shared secret expected in X-Proxy-Secret
	JWTSecret          string `json:"jwt_secret,omitempty"`           // HMAC secret for bearer tokens
	JWTExpirationHours int    `json:"jwt_expiration_hours,omitempty"` // Token lifetime

	// Content
	BanksPath string `json:"banks,omitempty"` // Path to a phrase bank override file
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535], got %d", c.Port)
	}
	if c.JWTExpirationHours < 0 {
		return fmt.Errorf("config error: 'jwt_expiration_hours' must be non-negative")
	}
	if c.BanksPath != "" {
		if _, err := os.Stat(c.BanksPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: phrase bank file not found: %s", c.BanksPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags and environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ProxySecret == "" {
		result.ProxySecret = defaults.ProxySecret
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}
	if result.JWTExpirationHours == 0 {
		result.JWTExpirationHours = defaults.JWTExpirationHours
	}
	if result.BanksPath == "" {
		result.BanksPath = defaults.BanksPath
	}

	return result
}

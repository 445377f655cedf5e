// Package config loads the artdistrict client configuration. Settings come
// from ~/.artdistrict/config.json with environment overrides applied on top,
// so a config file is never required.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultAPIBaseURL is the production marketplace API.
const DefaultAPIBaseURL = "https://api.artdistrictusa.com/api"

// DefaultRequestTimeout bounds every external call. A hung backend call
// should surface as a retryable error, not a permanently disabled button.
const DefaultRequestTimeout = 30 * time.Second

// Config holds client settings.
type Config struct {
	// APIBaseURL is the root of the marketplace REST API.
	APIBaseURL string `json:"api_base_url"`

	// RequestTimeoutSeconds bounds each HTTP call. Zero means the default.
	RequestTimeoutSeconds int `json:"request_timeout_seconds,omitempty"`

	// Debug enables category file logging under the state directory.
	Debug bool `json:"debug"`

	// LogLevel is one of debug/info/warn/error.
	LogLevel string `json:"log_level,omitempty"`
}

// Default returns the baked-in configuration.
func Default() *Config {
	return &Config{
		APIBaseURL: DefaultAPIBaseURL,
		LogLevel:   "info",
	}
}

// Dir returns the CLI state directory (~/.artdistrict), creating nothing.
func Dir() string {
	if dir := os.Getenv("ARTDISTRICT_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".artdistrict"
	}
	return filepath.Join(home, ".artdistrict")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyEnv()
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// applyEnv overlays ARTDISTRICT_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("ARTDISTRICT_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("ARTDISTRICT_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if v := os.Getenv("ARTDISTRICT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ARTDISTRICT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RequestTimeoutSeconds = n
		}
	}
}

// RequestTimeout returns the effective per-call timeout.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds > 0 {
		return time.Duration(c.RequestTimeoutSeconds) * time.Second
	}
	return DefaultRequestTimeout
}

// Save writes the config to path, creating the directory as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// internal/common/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Backend BackendConfig `mapstructure:"backend"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// BackendConfig describes the loan-origination backend that receives
// credit applications.
type BackendConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	SubmitPath string `mapstructure:"submit_path"`
	Timeout    int    `mapstructure:"timeout"` // seconds
}

// SubmitURL joins the base URL and the fixed submission sub-path.
func (b BackendConfig) SubmitURL() string {
	return strings.TrimRight(b.BaseURL, "/") + b.SubmitPath
}

// TimeoutDuration returns the transport timeout as a time.Duration.
func (b BackendConfig) TimeoutDuration() time.Duration {
	return time.Duration(b.Timeout) * time.Second
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url must not be empty")
	}
	if !strings.HasPrefix(cfg.Backend.BaseURL, "http://") && !strings.HasPrefix(cfg.Backend.BaseURL, "https://") {
		return fmt.Errorf("backend.base_url must be an http(s) URL, got %q", cfg.Backend.BaseURL)
	}
	if !strings.HasPrefix(cfg.Backend.SubmitPath, "/") {
		return fmt.Errorf("backend.submit_path must start with '/', got %q", cfg.Backend.SubmitPath)
	}
	if cfg.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive, got %d", cfg.Backend.Timeout)
	}
	return nil
}

// Package config provides configuration loading and validation for devfolio.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStorageKey is the key the root document is stored under.
const DefaultStorageKey = "devfolio_data_v2"

// Config represents the devfolio configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or environment overrides.
type Config struct {
	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty"` // HTTP listen port

	// Storage
	StorageURL string `json:"storage_url,omitempty" yaml:"storage_url,omitempty"` // file://, sqlite://, postgres://, memory://
	StorageKey string `json:"storage_key,omitempty" yaml:"storage_key,omitempty"` // Key holding the root document

	// ResetAuthOnLoad clears isAuthenticated when the document is loaded at startup.
	ResetAuthOnLoad bool `json:"reset_auth_on_load,omitempty" yaml:"reset_auth_on_load,omitempty"`

	// Assistant
	LLMProvider string `json:"llm_provider,omitempty" yaml:"llm_provider,omitempty"` // gemini or anthropic
	LLMModel    string `json:"llm_model,omitempty" yaml:"llm_model,omitempty"`       // Overrides the provider's standard model
	APIKey      string `json:"api_key,omitempty" yaml:"api_key,omitempty"`           // Provider API key; empty disables the assistant

	// Logging
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"` // debug, info, warn, error
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:        8080,
		StorageURL:  "sqlite://devfolio.db",
		StorageKey:  DefaultStorageKey,
		LLMProvider: "gemini",
		LogLevel:    "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file.
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Load builds the effective configuration: file values (if path is set),
// then environment overrides, then defaults for anything still empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("DEVFOLIO_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DEVFOLIO_PORT: %v", err)
		}
		c.Port = port
	}
	if v, ok := lookup("DEVFOLIO_STORAGE_URL"); ok && v != "" {
		c.StorageURL = v
	}
	if v, ok := lookup("DEVFOLIO_STORAGE_KEY"); ok && v != "" {
		c.StorageKey = v
	}
	if v, ok := lookup("DEVFOLIO_RESET_AUTH_ON_LOAD"); ok && v != "" {
		reset, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DEVFOLIO_RESET_AUTH_ON_LOAD: %v", err)
		}
		c.ResetAuthOnLoad = reset
	}
	if v, ok := lookup("DEVFOLIO_LLM_PROVIDER"); ok && v != "" {
		c.LLMProvider = v
	}
	if v, ok := lookup("DEVFOLIO_LLM_MODEL"); ok && v != "" {
		c.LLMModel = v
	}
	if v, ok := lookup("DEVFOLIO_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}

	// API key: provider-specific variable first, then the generic ones.
	if c.APIKey == "" {
		keys := []string{"GEMINI_API_KEY", "API_KEY"}
		if strings.EqualFold(c.LLMProvider, "anthropic") {
			keys = []string{"ANTHROPIC_API_KEY", "API_KEY"}
		}
		for _, key := range keys {
			if v, ok := lookup(key); ok && v != "" {
				c.APIKey = v
				break
			}
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.StorageURL != "" {
		u, err := url.Parse(c.StorageURL)
		if err != nil {
			return fmt.Errorf("config error: invalid 'storage_url': %v", err)
		}
		switch u.Scheme {
		case "file", "sqlite", "postgres", "postgresql", "memory":
		default:
			return fmt.Errorf("config error: unsupported storage scheme %q", u.Scheme)
		}
	}

	switch strings.ToLower(c.LLMProvider) {
	case "", "gemini", "anthropic":
	default:
		return fmt.Errorf("config error: unsupported 'llm_provider' %q", c.LLMProvider)
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unsupported 'log_level' %q", c.LogLevel)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.StorageURL == "" {
		result.StorageURL = defaults.StorageURL
	}
	if result.StorageKey == "" {
		result.StorageKey = defaults.StorageKey
	}
	if result.LLMProvider == "" {
		result.LLMProvider = defaults.LLMProvider
	}
	if result.LLMModel == "" {
		result.LLMModel = defaults.LLMModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}

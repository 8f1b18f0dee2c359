package ratelimit

import (
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration using lookup for environment
// variables. Endpoints without a specific configuration are unlimited unless
// RATE_LIMIT_DEFAULT_LIMIT is set.
func LoadConfig(lookup func(string) (string, bool)) *Config {
	env := envReader(lookup)

	if !env.bool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.int("RATE_LIMIT_DEFAULT_LIMIT", 0),
		DefaultWindow:   env.duration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: env.duration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(env.string("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(env.string("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the limits for the endpoints that reach
// outside the process: the contact form writes to storage on behalf of
// anonymous visitors and the assistant endpoints call the LLM provider.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/contact", Method: "POST", Limit: 5, Window: 10 * time.Minute, Burst: 3},

		{Path: "/admin/projects/suggest", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/admin/profile/suggest", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/admin/optimizer", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
	}
}

// envReader wraps a lookup function with typed getters that fall back to a default.
type envReader func(string) (string, bool)

func (e envReader) string(key, defaultValue string) string {
	if v, ok := e(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func (e envReader) int(key string, defaultValue int) int {
	if v, ok := e(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func (e envReader) bool(key string, defaultValue bool) bool {
	if v, ok := e(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func (e envReader) duration(key string, defaultValue time.Duration) time.Duration {
	if v, ok := e(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}

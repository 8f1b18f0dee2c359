// Package llm provides LLM provider configuration and client abstractions.
// Callers pick a model tier; the provider config maps tiers to model names.
package llm

import "fmt"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short rewrites such as single-field suggestions
	TierLite ModelTier = "lite"
	// TierStandard is for structured output such as the portfolio review
	TierStandard ModelTier = "standard"
	// TierAdvanced is for longer reasoning tasks
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderAnthropic is the Anthropic Claude provider
	ProviderAnthropic Provider = "anthropic"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// Temperature applied to every request.
	Temperature float32
	// MaxTokens caps the response length for providers that require it.
	MaxTokens int
}

// DefaultConfig returns the default configuration (Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}

// DefaultAnthropicConfig returns the default Anthropic configuration
func DefaultAnthropicConfig() *Config {
	return &Config{
		Provider: ProviderAnthropic,
		Models: map[ModelTier]string{
			TierLite:     "claude-haiku-4-5",
			TierStandard: "claude-sonnet-4-5",
			TierAdvanced: "claude-opus-4-1",
		},
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}

// ConfigFor returns the default config for provider. A non-empty model
// overrides every tier. An empty provider means Gemini.
func ConfigFor(provider, model string) (*Config, error) {
	var cfg *Config
	switch Provider(provider) {
	case "", ProviderGemini:
		cfg = DefaultGeminiConfig()
	case ProviderAnthropic:
		cfg = DefaultAnthropicConfig()
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", provider)
	}

	if model != "" {
		for tier := range cfg.Models {
			cfg.Models[tier] = model
		}
	}
	return cfg, nil
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := *c
	newConfig.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return &newConfig
}

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	aoption "github.com/anthropics/anthropic-sdk-go/option"
)

// jsonSystemPrompt steers Claude towards a bare JSON reply; the Messages API
// has no response MIME type setting.
const jsonSystemPrompt = "Respond with a single valid JSON value and nothing else. Do not wrap it in markdown code fences."

// AnthropicClient implements Client for Anthropic Claude
type AnthropicClient struct {
	client anthropic.Client
	config *Config
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(config *Config, apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultAnthropicConfig()
	}

	return &AnthropicClient{
		client: anthropic.NewClient(aoption.WithAPIKey(apiKey)),
		config: config,
	}, nil
}

func (c *AnthropicClient) params(tier ModelTier, prompt string) (anthropic.MessageNewParams, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return anthropic.MessageNewParams{}, fmt.Errorf("no model configured for tier %s", tier)
	}

	maxTokens := int64(c.config.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	return anthropic.MessageNewParams{
		Model:       anthropic.Model(modelName),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(float64(c.config.Temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *AnthropicClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	params, err := c.params(tier, prompt)
	if err != nil {
		return "", err
	}
	return c.send(ctx, params)
}

// GenerateJSON generates JSON content using the specified model tier
func (c *AnthropicClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	params, err := c.params(tier, prompt)
	if err != nil {
		return "", err
	}
	params.System = []anthropic.TextBlockParam{{Text: jsonSystemPrompt}}

	text, err := c.send(ctx, params)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func (c *AnthropicClient) send(ctx context.Context, params anthropic.MessageNewParams) (string, error) {
	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// GetModel returns the model name for a tier
func (c *AnthropicClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the SDK client holds no resources that need releasing.
func (c *AnthropicClient) Close() error {
	return nil
}

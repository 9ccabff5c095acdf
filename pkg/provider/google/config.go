package google

import (
	"context"
	"net/http"

	"github.com/nanobanana/mcp/pkg/provider"

	"google.golang.org/genai"
)

type Config struct {
	token string

	variant  provider.Variant
	thinking string

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

// WithThinking sets the default reasoning effort for the pro variant
// ("low" or "high").
func WithThinking(level string) Option {
	return func(c *Config) {
		c.thinking = level
	}
}

func (c *Config) newClient(ctx context.Context) (*genai.Client, error) {
	config := &genai.ClientConfig{
		APIKey:  c.token,
		Backend: genai.BackendGeminiAPI,

		HTTPClient: c.client,
	}

	return genai.NewClient(ctx, config)
}

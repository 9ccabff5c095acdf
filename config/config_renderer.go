package config

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nanobanana/mcp/pkg/limiter"
	"github.com/nanobanana/mcp/pkg/otel"
	"github.com/nanobanana/mcp/pkg/provider"
	"github.com/nanobanana/mcp/pkg/provider/google"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterRenderer(id string, p provider.Renderer) {
	if cfg.renderer == nil {
		cfg.renderer = make(map[string]provider.Renderer)
	}

	if _, ok := cfg.renderer[""]; !ok {
		cfg.renderer[""] = p
	}

	cfg.renderer[id] = p
}

func (cfg *Config) Renderer(id string) (provider.Renderer, error) {
	if cfg.renderer != nil {
		if p, ok := cfg.renderer[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("renderer not found: " + id)
}

type rendererConfig struct {
	Type string `yaml:"type"`

	Token string `yaml:"token"`

	// Variant is the default model tier: auto, flash or pro.
	Variant string `yaml:"variant"`

	// Thinking is the default reasoning effort for the pro tier: low or high.
	Thinking string `yaml:"thinking"`

	Limit *int `yaml:"limit"`
}

type rendererContext struct {
	Client  *http.Client
	Limiter *rate.Limiter
}

func (cfg *Config) registerRenderers(f *configFile) error {
	var configs map[string]rendererConfig

	if err := f.Renderers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Renderers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := rendererContext{
			Limiter: createLimiter(config.Limit),
		}

		renderer, err := createRenderer(config, context)

		if err != nil {
			return err
		}

		if context.Limiter != nil {
			if _, ok := renderer.(limiter.Renderer); !ok {
				renderer = limiter.NewRenderer(context.Limiter, renderer)
			}
		}

		if _, ok := renderer.(otel.Renderer); !ok {
			renderer = otel.NewRenderer(config.Type, id, renderer)
		}

		cfg.RegisterRenderer(id, renderer)
	}

	return nil
}

func createRenderer(cfg rendererConfig, context rendererContext) (provider.Renderer, error) {
	switch strings.ToLower(cfg.Type) {

	case "gemini", "google":
		return geminiRenderer(cfg, context)

	default:
		return nil, errors.New("invalid renderer type: " + cfg.Type)
	}
}

func geminiRenderer(cfg rendererConfig, context rendererContext) (provider.Renderer, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if cfg.Thinking != "" {
		options = append(options, google.WithThinking(cfg.Thinking))
	}

	if context.Client != nil {
		options = append(options, google.WithClient(context.Client))
	}

	return google.NewRenderer(cfg.Variant, options...)
}

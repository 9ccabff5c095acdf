package config

import (
	"errors"
	"strings"

	"github.com/nanobanana/mcp/pkg/otel"
	"github.com/nanobanana/mcp/pkg/provider"
	"github.com/nanobanana/mcp/pkg/tool"
	"github.com/nanobanana/mcp/pkg/tool/render"
)

func (cfg *Config) RegisterTool(id string, p tool.Provider) {
	if cfg.tools == nil {
		cfg.tools = make(map[string]tool.Provider)
	}

	cfg.tools[id] = p
}

func (cfg *Config) Tools() []tool.Provider {
	var tools []tool.Provider

	for _, p := range cfg.tools {
		tools = append(tools, p)
	}

	return tools
}

func (cfg *Config) Tool(id string) (tool.Provider, error) {
	if cfg.tools != nil {
		if p, ok := cfg.tools[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("tool not found: " + id)
}

type toolConfig struct {
	Type string `yaml:"type"`

	Model string `yaml:"model"`

	// Dir is where generated images are written.
	Dir string `yaml:"dir"`
}

type toolContext struct {
	Renderer provider.Renderer
}

func (cfg *Config) registerTools(f *configFile) error {
	var configs map[string]toolConfig

	if err := f.Tools.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Tools.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := toolContext{}

		if p, err := cfg.Renderer(config.Model); err == nil {
			context.Renderer = p
		}

		tool, err := createTool(config, context)

		if err != nil {
			return err
		}

		if _, ok := tool.(otel.Tool); !ok {
			tool = otel.NewTool(config.Type, tool)
		}

		cfg.RegisterTool(id, tool)
	}

	return nil
}

func createTool(cfg toolConfig, context toolContext) (tool.Provider, error) {
	switch strings.ToLower(cfg.Type) {

	case "render":
		return renderTool(cfg, context)

	default:
		return nil, errors.New("invalid tool type: " + cfg.Type)
	}
}

func renderTool(cfg toolConfig, context toolContext) (tool.Provider, error) {
	if context.Renderer == nil {
		return nil, errors.New("render tool requires a renderer model")
	}

	var options []render.Option

	if cfg.Dir != "" {
		options = append(options, render.WithDir(cfg.Dir))
	}

	return render.New(context.Renderer, options...)
}

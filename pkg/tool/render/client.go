package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/nanobanana/mcp/pkg/provider"
	"github.com/nanobanana/mcp/pkg/tool"

	"github.com/google/uuid"
)

var _ tool.Provider = (*Client)(nil)

const maxPromptLength = 8192

type Client struct {
	provider provider.Renderer

	dir string
}

type Result struct {
	Path string `json:"path"`

	Model string `json:"model"`
	Text  string `json:"text,omitempty"`
}

func New(p provider.Renderer, options ...Option) (*Client, error) {
	c := &Client{
		provider: p,

		dir: defaultDir(),
	}

	for _, option := range options {
		option(c)
	}

	dir, err := validateDir(c.dir)

	if err != nil {
		return nil, err
	}

	c.dir = dir

	return c, nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        "generate_image",
			Description: "Generate an image from a text prompt using Google Gemini image models, or edit images provided in the context. Returns the local path of the saved image and optional model commentary.",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"prompt": map[string]any{
						"type":        "string",
						"description": "detailed text description of the image to generate or edit. must be english.",
					},

					"model": map[string]any{
						"type":        "string",
						"enum":        []string{"auto", "flash", "pro"},
						"description": "model variant. 'flash' is fast and limited to 1024px, 'pro' supports up to 4K, grounding and thinking. 'auto' picks from the prompt.",
					},

					"resolution": map[string]any{
						"type":        "string",
						"enum":        []string{"1K", "2K", "4K", "high"},
						"description": "output resolution. pro variant only.",
					},

					"aspect_ratio": map[string]any{
						"type":        "string",
						"enum":        []string{"1:1", "2:3", "3:2", "3:4", "4:3", "4:5", "5:4", "9:16", "16:9", "21:9"},
						"description": "aspect ratio of the generated image.",
					},

					"grounding": map[string]any{
						"type":        "boolean",
						"description": "allow the model to consult Google Search while generating. pro variant only.",
					},
				},

				"required": []string{"prompt"},
			},
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != "generate_image" {
		return nil, tool.ErrInvalidTool
	}

	prompt, ok := parameters["prompt"].(string)

	if !ok {
		return nil, errors.New("missing prompt parameter")
	}

	if strings.TrimSpace(prompt) == "" {
		return nil, provider.NewValidationError("prompt cannot be empty")
	}

	if len(prompt) > maxPromptLength {
		return nil, provider.NewValidationError("prompt too long")
	}

	options := &provider.RenderOptions{}

	if val, ok := parameters["model"].(string); ok {
		switch provider.Variant(val) {
		case provider.VariantAuto, provider.VariantFlash, provider.VariantPro, "":
			options.Variant = provider.Variant(val)

		default:
			return nil, provider.NewValidationError("unsupported model variant: " + val)
		}
	}

	if val, ok := parameters["resolution"].(string); ok {
		options.Resolution = val
	}

	if val, ok := parameters["aspect_ratio"].(string); ok {
		options.AspectRatio = val
	}

	if val, ok := parameters["grounding"].(bool); ok {
		options.Grounding = val
	}

	if files, ok := tool.FilesFromContext(ctx); ok {
		options.Images = files
	}

	image, err := c.provider.Render(ctx, prompt, options)

	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()

	if err != nil {
		id = uuid.New()
	}

	path := filepath.Join(c.dir, id.String()+extension(image.ContentType))

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, image.Content, 0644); err != nil {
		return nil, err
	}

	return Result{
		Path: path,

		Model: image.Model,
		Text:  image.Text,
	}, nil
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"

	case "image/webp":
		return ".webp"

	default:
		return ".png"
	}
}

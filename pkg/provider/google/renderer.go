package google

import (
	"context"

	"github.com/nanobanana/mcp/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Renderer = (*Renderer)(nil)

type Renderer struct {
	*Config
}

// NewRenderer creates a Gemini image renderer. The variant is the default
// tier ("flash", "pro" or "auto") used when a request carries no override.
func NewRenderer(variant string, options ...Option) (*Renderer, error) {
	cfg := &Config{
		variant: provider.VariantAuto,
	}

	switch provider.Variant(variant) {
	case provider.VariantFlash, provider.VariantPro, provider.VariantAuto:
		cfg.variant = provider.Variant(variant)

	case "":

	default:
		return nil, provider.NewValidationError("unsupported variant: " + variant)
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.thinking != "" {
		if _, err := normalizeThinking(cfg.thinking); err != nil {
			return nil, err
		}
	}

	return &Renderer{
		Config: cfg,
	}, nil
}

func (r *Renderer) Render(ctx context.Context, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	opts := provider.RenderOptions{}

	if options != nil {
		opts = *options
	}

	if opts.Thinking == "" {
		opts.Thinking = r.thinking
	}

	variant := selectVariant(input, opts.Variant, r.variant)
	model := variantModels[variant]

	config, err := payloadBuilders[variant](&opts)

	if err != nil {
		return nil, err
	}

	client, err := r.newClient(ctx)

	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(input),
	}

	for _, i := range opts.Images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: i.ContentType,
				Data:     i.Content,
			},
		})
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)

	if err != nil {
		return nil, convertError(err)
	}

	result, err := toRendering(ctx, resp)

	if err != nil {
		return nil, err
	}

	result.ID = uuid.NewString()
	result.Model = model

	return result, nil
}

package provider

import (
	"context"
)

type Renderer interface {
	Render(ctx context.Context, input string, options *RenderOptions) (*Rendering, error)
}

// Variant names a vendor model configuration.
type Variant string

const (
	// VariantAuto lets the renderer pick a variant from the prompt.
	VariantAuto Variant = "auto"

	// VariantFlash is the speed-optimized, 1024px model.
	VariantFlash Variant = "flash"

	// VariantPro is the quality-optimized, 4K-capable model.
	VariantPro Variant = "pro"
)

type RenderOptions struct {
	// Variant overrides automatic model selection.
	Variant Variant

	// Resolution is the output resolution (1K, 2K, 4K or high).
	// Supported by the pro variant only.
	Resolution string

	// AspectRatio is the output aspect ratio (e.g. "16:9").
	AspectRatio string

	// Grounding enables Google Search grounding. Pro variant only.
	Grounding bool

	// Thinking is the reasoning effort ("low" or "high", default high).
	// Supported by the pro variant only.
	Thinking string

	// Images are optional input images to edit or blend.
	Images []File
}

type Rendering struct {
	ID string

	Model string

	// Text is the model's optional commentary alongside the image.
	Text string

	Content     []byte
	ContentType string
}

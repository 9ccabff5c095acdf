package google

import (
	"log/slog"
	"strings"

	"github.com/nanobanana/mcp/pkg/provider"

	"google.golang.org/genai"
)

const (
	// ModelFlash is speed-optimized and renders up to 1024px.
	ModelFlash = "gemini-2.5-flash-image"

	// ModelPro is quality-optimized and renders up to 4K.
	ModelPro = "gemini-3-pro-image-preview"
)

var variantModels = map[provider.Variant]string{
	provider.VariantFlash: ModelFlash,
	provider.VariantPro:   ModelPro,
}

// Prompts mentioning these terms are routed to the pro variant.
var qualityKeywords = []string{
	"4k",
	"high quality",
	"professional",
	"production",
	"high-res",
	"high resolution",
	"detailed",
	"sharp",
	"crisp",
	"hd",
	"ultra",
	"premium",
	"magazine",
	"print",
}

// Prompts mentioning these terms are routed to the flash variant.
var speedKeywords = []string{
	"quick",
	"fast",
	"draft",
	"prototype",
	"sketch",
	"rapid",
	"rough",
	"temporary",
	"test",
}

// selectVariant picks the model variant for a prompt. An explicit override
// wins; otherwise the prompt is scanned for quality and speed terms, quality
// first. Prompts matching neither set fall back to the configured default.
func selectVariant(prompt string, override, fallback provider.Variant) provider.Variant {
	if override == provider.VariantFlash || override == provider.VariantPro {
		return override
	}

	if fallback != provider.VariantFlash && fallback != provider.VariantPro {
		fallback = provider.VariantFlash
	}

	lower := strings.ToLower(prompt)

	for _, keyword := range qualityKeywords {
		if strings.Contains(lower, keyword) {
			return provider.VariantPro
		}
	}

	for _, keyword := range speedKeywords {
		if strings.Contains(lower, keyword) {
			return provider.VariantFlash
		}
	}

	return fallback
}

var aspectRatios = []string{
	"1:1",
	"2:3",
	"3:2",
	"3:4",
	"4:3",
	"4:5",
	"5:4",
	"9:16",
	"16:9",
	"21:9",
}

// The API only accepts uppercase size values ("4K", not "4k").
// "high" maps to the maximum the pro variant supports.
var resolutions = map[string]string{
	"1k":   "1K",
	"2k":   "2K",
	"4k":   "4K",
	"high": "4K",
}

func normalizeResolution(val string) (string, error) {
	resolution, ok := resolutions[strings.ToLower(strings.TrimSpace(val))]

	if !ok {
		return "", provider.NewValidationError("unsupported resolution: " + val + " (expected 1K, 2K, 4K or high)")
	}

	return resolution, nil
}

var thinkingLevels = map[string]genai.ThinkingLevel{
	"low":  genai.ThinkingLevelLow,
	"high": genai.ThinkingLevelHigh,
}

func normalizeThinking(val string) (genai.ThinkingLevel, error) {
	level, ok := thinkingLevels[strings.ToLower(strings.TrimSpace(val))]

	if !ok {
		return "", provider.NewValidationError("unsupported thinking level: " + val + " (expected low or high)")
	}

	return level, nil
}

func normalizeAspectRatio(val string) (string, error) {
	val = strings.TrimSpace(val)

	for _, ratio := range aspectRatios {
		if val == ratio {
			return ratio, nil
		}
	}

	return "", provider.NewValidationError("unsupported aspect ratio: " + val + " (expected one of " + strings.Join(aspectRatios, ", ") + ")")
}

type payloadBuilder func(options *provider.RenderOptions) (*genai.GenerateContentConfig, error)

// Payload schemas diverge between the two variants and must not be assumed to
// generalize. Keeping one builder per variant makes unsupported-field misuse
// impossible by construction.
var payloadBuilders = map[provider.Variant]payloadBuilder{
	provider.VariantFlash: flashPayload,
	provider.VariantPro:   proPayload,
}

// flashPayload builds the request config for the flash variant. The model
// accepts image-only response modalities and no resolution control. Pro-only
// options are omitted entirely: the model rejects unknown fields with an
// opaque failure instead of ignoring them.
func flashPayload(options *provider.RenderOptions) (*genai.GenerateContentConfig, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	}

	if options.Resolution != "" {
		slog.Warn("resolution ignored for flash variant (only pro renders above 1024px)", "resolution", options.Resolution)
	}

	if options.Grounding {
		slog.Warn("grounding ignored for flash variant")
	}

	if options.Thinking != "" {
		slog.Warn("thinking level ignored for flash variant", "thinking", options.Thinking)
	}

	if options.AspectRatio != "" {
		ratio, err := normalizeAspectRatio(options.AspectRatio)

		if err != nil {
			return nil, err
		}

		config.ImageConfig = &genai.ImageConfig{
			AspectRatio: ratio,
		}
	}

	return config, nil
}

// proPayload builds the request config for the pro variant. The resolution
// travels as ImageConfig.ImageSize, not as a generation parameter, and the
// response modalities must declare both TEXT and IMAGE: with IMAGE alone the
// model returns an empty response instead of an error.
func proPayload(options *provider.RenderOptions) (*genai.GenerateContentConfig, error) {
	thinking := genai.ThinkingLevelHigh

	if options.Thinking != "" {
		level, err := normalizeThinking(options.Thinking)

		if err != nil {
			return nil, err
		}

		thinking = level
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},

		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingLevel: thinking,
		},
	}

	imageConfig := &genai.ImageConfig{}

	if options.AspectRatio != "" {
		ratio, err := normalizeAspectRatio(options.AspectRatio)

		if err != nil {
			return nil, err
		}

		imageConfig.AspectRatio = ratio
	}

	if options.Resolution != "" {
		resolution, err := normalizeResolution(options.Resolution)

		if err != nil {
			return nil, err
		}

		imageConfig.ImageSize = resolution
	}

	if imageConfig.AspectRatio != "" || imageConfig.ImageSize != "" {
		config.ImageConfig = imageConfig
	}

	if options.Grounding {
		config.Tools = []*genai.Tool{
			{
				GoogleSearch: &genai.GoogleSearch{},
			},
		}
	}

	return config, nil
}

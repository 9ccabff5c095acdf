package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/nanobanana/mcp/pkg/provider"

	"google.golang.org/genai"
)

// toRendering unpacks the ordered response parts into text commentary and
// image bytes. The first text part and the first inline-data part win.
//
// A response with neither part and no API error is the signature of a request
// shape the model silently rejects (e.g. an image-only modality declaration
// against the pro variant). It is surfaced as ErrEmptyResponse so operators
// can tell it apart from a model that declined to generate.
func toRendering(ctx context.Context, resp *genai.GenerateContentResponse) (*provider.Rendering, error) {
	result := &provider.Rendering{}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}

		for _, part := range candidate.Content.Parts {
			if part.Text != "" && result.Text == "" {
				result.Text = part.Text
			}

			if part.InlineData != nil && len(part.InlineData.Data) > 0 && result.Content == nil {
				result.Content = part.InlineData.Data
				result.ContentType = part.InlineData.MIMEType
			}
		}
	}

	if result.Text == "" && result.Content == nil {
		slog.WarnContext(ctx, "model returned neither text nor image and no error, request shape likely unsupported")
		return nil, provider.ErrEmptyResponse
	}

	if result.Content == nil {
		return nil, fmt.Errorf("%w: %s", provider.ErrNoImage, result.Text)
	}

	if result.ContentType == "" {
		result.ContentType = "image/png"
	}

	return result, nil
}

// convertError maps vendor and transport failures onto the error taxonomy.
func convertError(err error) error {
	var apierr genai.APIError

	if errors.As(err, &apierr) {
		switch apierr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", provider.ErrAuthentication, apierr.Message)

		case http.StatusRequestTimeout, http.StatusTooManyRequests,
			http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return fmt.Errorf("%w: %s", provider.ErrTransient, apierr.Message)
		}

		return err
	}

	var netErr net.Error

	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %s", provider.ErrTransient, netErr.Error())
	}

	return err
}

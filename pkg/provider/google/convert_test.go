package google

import (
	"context"
	"errors"
	"testing"

	"github.com/nanobanana/mcp/pkg/provider"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func response(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: parts,
				},
			},
		},
	}
}

func TestToRendering(t *testing.T) {
	ctx := context.Background()

	t.Run("image without text", func(t *testing.T) {
		result, err := toRendering(ctx, response(&genai.Part{
			InlineData: &genai.Blob{
				MIMEType: "image/png",
				Data:     []byte{0x89, 0x50},
			},
		}))

		require.NoError(t, err)
		require.Empty(t, result.Text)
		require.Equal(t, []byte{0x89, 0x50}, result.Content)
		require.Equal(t, "image/png", result.ContentType)
	})

	t.Run("text and image", func(t *testing.T) {
		result, err := toRendering(ctx, response(
			&genai.Part{Text: "a serene mountain lake"},
			&genai.Part{
				InlineData: &genai.Blob{
					MIMEType: "image/png",
					Data:     []byte{0x01},
				},
			},
		))

		require.NoError(t, err)
		require.Equal(t, "a serene mountain lake", result.Text)
		require.Equal(t, []byte{0x01}, result.Content)
	})

	t.Run("first image part wins", func(t *testing.T) {
		result, err := toRendering(ctx, response(
			&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{0x01}}},
			&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{0x02}}},
		))

		require.NoError(t, err)
		require.Equal(t, []byte{0x01}, result.Content)
	})

	t.Run("text without image", func(t *testing.T) {
		_, err := toRendering(ctx, response(&genai.Part{Text: "I cannot generate that"}))
		require.ErrorIs(t, err, provider.ErrNoImage)
	})

	t.Run("neither part is a silent empty response", func(t *testing.T) {
		_, err := toRendering(ctx, response())
		require.ErrorIs(t, err, provider.ErrEmptyResponse)
	})

	t.Run("no candidates is a silent empty response", func(t *testing.T) {
		_, err := toRendering(ctx, &genai.GenerateContentResponse{})
		require.ErrorIs(t, err, provider.ErrEmptyResponse)
	})

	t.Run("missing content type defaults to png", func(t *testing.T) {
		result, err := toRendering(ctx, response(&genai.Part{
			InlineData: &genai.Blob{Data: []byte{0x01}},
		}))

		require.NoError(t, err)
		require.Equal(t, "image/png", result.ContentType)
	})
}

func TestConvertError(t *testing.T) {
	t.Run("unauthorized is fatal", func(t *testing.T) {
		err := convertError(genai.APIError{Code: 401, Message: "invalid api key"})
		require.ErrorIs(t, err, provider.ErrAuthentication)
	})

	t.Run("forbidden is fatal", func(t *testing.T) {
		err := convertError(genai.APIError{Code: 403, Message: "permission denied"})
		require.ErrorIs(t, err, provider.ErrAuthentication)
	})

	t.Run("throttling and server errors are transient", func(t *testing.T) {
		for _, code := range []int{408, 429, 500, 502, 503, 504} {
			err := convertError(genai.APIError{Code: code})
			require.ErrorIs(t, err, provider.ErrTransient, code)
		}
	})

	t.Run("bad request is passed through", func(t *testing.T) {
		err := convertError(genai.APIError{Code: 400, Message: "bad request"})
		require.NotErrorIs(t, err, provider.ErrAuthentication)
		require.NotErrorIs(t, err, provider.ErrTransient)
	})

	t.Run("plain errors are passed through", func(t *testing.T) {
		cause := errors.New("boom")
		require.Equal(t, cause, convertError(cause))
	})
}

package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nanobanana/mcp/pkg/provider"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeVendor struct {
	status int
	body   string

	path    string
	request map[string]any
}

func (f *fakeVendor) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.path = r.URL.Path

		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &f.request)

		w.Header().Set("Content-Type", "application/json")

		if f.status != 0 {
			w.WriteHeader(f.status)
		}

		w.Write([]byte(f.body))
	})
}

func newTestRenderer(t *testing.T, variant string, vendor *fakeVendor) *Renderer {
	t.Helper()

	server := httptest.NewServer(vendor.handler())
	t.Cleanup(server.Close)

	genai.SetDefaultBaseURLs(genai.BaseURLParameters{
		GeminiURL: server.URL,
	})

	r, err := NewRenderer(variant, WithToken("test-key"))
	require.NoError(t, err)

	return r
}

func vendorResponse(text string, image []byte) string {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{
						map[string]any{"text": text},
						map[string]any{
							"inlineData": map[string]any{
								"mimeType": "image/png",
								"data":     base64.StdEncoding.EncodeToString(image),
							},
						},
					},
				},
			},
		},
	}

	data, _ := json.Marshal(resp)
	return string(data)
}

func TestRender(t *testing.T) {
	ctx := context.Background()

	t.Run("pro request shape", func(t *testing.T) {
		vendor := &fakeVendor{
			body: vendorResponse("a skyline", []byte("image-bytes")),
		}

		r := newTestRenderer(t, "auto", vendor)

		result, err := r.Render(ctx, "Generate a 4K landscape of mountains", &provider.RenderOptions{
			Resolution:  "4k",
			AspectRatio: "16:9",
		})
		require.NoError(t, err)

		require.True(t, strings.Contains(vendor.path, ModelPro), vendor.path)

		config, ok := vendor.request["generationConfig"].(map[string]any)
		require.True(t, ok, "missing generationConfig in %v", vendor.request)

		require.Equal(t, []any{"TEXT", "IMAGE"}, config["responseModalities"])

		imageConfig, ok := config["imageConfig"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "4K", imageConfig["imageSize"])
		require.Equal(t, "16:9", imageConfig["aspectRatio"])

		require.Equal(t, ModelPro, result.Model)
		require.Equal(t, "a skyline", result.Text)
		require.Equal(t, []byte("image-bytes"), result.Content)
		require.NotEmpty(t, result.ID)
	})

	t.Run("flash request shape", func(t *testing.T) {
		vendor := &fakeVendor{
			body: vendorResponse("", []byte("image-bytes")),
		}

		r := newTestRenderer(t, "auto", vendor)

		_, err := r.Render(ctx, "quick sketch of a cat", &provider.RenderOptions{
			Resolution: "4K",
			Grounding:  true,
		})
		require.NoError(t, err)

		require.True(t, strings.Contains(vendor.path, ModelFlash), vendor.path)

		config, ok := vendor.request["generationConfig"].(map[string]any)
		require.True(t, ok)

		require.Equal(t, []any{"IMAGE"}, config["responseModalities"])
		require.Nil(t, config["imageConfig"])

		require.Nil(t, vendor.request["tools"])
	})

	t.Run("validation happens before the call", func(t *testing.T) {
		vendor := &fakeVendor{}

		r := newTestRenderer(t, "pro", vendor)

		_, err := r.Render(ctx, "a cat", &provider.RenderOptions{
			Resolution: "8K",
		})

		var verr *provider.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Empty(t, vendor.path)
	})

	t.Run("authentication failure", func(t *testing.T) {
		vendor := &fakeVendor{
			status: http.StatusUnauthorized,
			body:   `{"error": {"code": 401, "message": "API key not valid", "status": "UNAUTHENTICATED"}}`,
		}

		r := newTestRenderer(t, "flash", vendor)

		_, err := r.Render(ctx, "a cat", nil)
		require.ErrorIs(t, err, provider.ErrAuthentication)
	})

	t.Run("silent empty response", func(t *testing.T) {
		vendor := &fakeVendor{
			body: `{"candidates": [{"content": {"parts": []}}]}`,
		}

		r := newTestRenderer(t, "flash", vendor)

		_, err := r.Render(ctx, "a cat", nil)
		require.ErrorIs(t, err, provider.ErrEmptyResponse)
	})
}

package limiter

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nanobanana/mcp/pkg/provider"

	"golang.org/x/time/rate"
)

type mockRenderer struct {
	calls atomic.Int64
}

func (m *mockRenderer) Render(ctx context.Context, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	m.calls.Add(1)

	return &provider.Rendering{
		ID:      "test",
		Content: []byte{0x01},
	}, nil
}

func TestRender(t *testing.T) {
	t.Run("delegates without limiter", func(t *testing.T) {
		mock := &mockRenderer{}
		r := NewRenderer(nil, mock)

		result, err := r.Render(context.Background(), "a cat", nil)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.ID != "test" {
			t.Errorf("expected delegated result, got %q", result.ID)
		}

		if mock.calls.Load() != 1 {
			t.Errorf("expected 1 call, got %d", mock.calls.Load())
		}
	})

	t.Run("waits on limiter", func(t *testing.T) {
		mock := &mockRenderer{}
		r := NewRenderer(rate.NewLimiter(rate.Every(10*time.Millisecond), 1), mock)

		ctx := context.Background()

		start := time.Now()

		for i := 0; i < 3; i++ {
			if _, err := r.Render(ctx, "a cat", nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
			t.Errorf("expected rate limiting, 3 calls took %v", elapsed)
		}
	})

	t.Run("cancelled context aborts wait", func(t *testing.T) {
		mock := &mockRenderer{}
		r := NewRenderer(rate.NewLimiter(rate.Every(time.Hour), 1), mock)

		ctx, cancel := context.WithCancel(context.Background())

		// drain the single burst token
		if _, err := r.Render(ctx, "a cat", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cancel()

		if _, err := r.Render(ctx, "a cat", nil); err == nil {
			t.Error("expected error from cancelled context")
		}

		if mock.calls.Load() != 1 {
			t.Errorf("expected 1 call, got %d", mock.calls.Load())
		}
	})
}

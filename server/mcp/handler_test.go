package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/nanobanana/mcp/config"
	srv "github.com/nanobanana/mcp/pkg/mcp"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}

	s, err := srv.New("test", "dev", nil)
	require.NoError(t, err)

	cfg.RegisterMCP("test", s)

	h, err := New(cfg)
	require.NoError(t, err)

	return h
}

func TestGetServer(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh servers are cached", func(t *testing.T) {
		h := newTestHandler(t)

		first, err := h.getServer(ctx, "test")
		require.NoError(t, err)

		second, err := h.getServer(ctx, "test")
		require.NoError(t, err)

		require.Same(t, first, second)
	})

	t.Run("stale session-free servers are rebuilt", func(t *testing.T) {
		h := newTestHandler(t)

		first, err := h.getServer(ctx, "test")
		require.NoError(t, err)

		h.mu.Lock()
		h.cacheTime["test"] = time.Now().Add(-10 * time.Minute)
		h.mu.Unlock()

		second, err := h.getServer(ctx, "test")
		require.NoError(t, err)

		require.NotSame(t, first, second)

		// The rebuilt server is cached with a fresh timestamp.
		third, err := h.getServer(ctx, "test")
		require.NoError(t, err)

		require.Same(t, second, third)
	})

	t.Run("unknown id", func(t *testing.T) {
		h := newTestHandler(t)

		_, err := h.getServer(ctx, "missing")
		require.Error(t, err)
	})
}

package similar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haldis/exa-mcp/pkg/exa"

	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/findSimilar", r.URL.Path)

		w.Write([]byte(`{"results":[{"id":"r1","title":"Similar Page","url":"https://other.example","score":0.85}]}`))
	}))
	t.Cleanup(server.Close)

	gateway, err := exa.New("test-key", exa.WithURL(server.URL))
	require.NoError(t, err)

	t.Cleanup(gateway.Close)

	c, err := New(gateway)
	require.NoError(t, err)

	result, err := c.Execute(ctx, "exa_find_similar", map[string]any{"url": "example.com"})
	require.NoError(t, err)

	require.Contains(t, result, "# Pages Similar to: https://example.com")
	require.Contains(t, result, "Found **1** similar pages")
	require.Contains(t, result, "**Similarity:** 0.85")
}

func TestExecuteEmpty(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	t.Cleanup(server.Close)

	gateway, err := exa.New("test-key", exa.WithURL(server.URL))
	require.NoError(t, err)

	t.Cleanup(gateway.Close)

	c, err := New(gateway)
	require.NoError(t, err)

	result, err := c.Execute(ctx, "exa_find_similar", map[string]any{"url": "https://example.com"})
	require.NoError(t, err)

	require.Equal(t, "No similar pages found for: https://example.com", result)
}

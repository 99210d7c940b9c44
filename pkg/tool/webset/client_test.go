package webset

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haldis/exa-mcp/pkg/exa"

	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway, err := exa.New("test-key", exa.WithURL(server.URL))
	require.NoError(t, err)

	t.Cleanup(gateway.Close)

	c, err := New(gateway)
	require.NoError(t, err)

	return c
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	c := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v0/websets", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		search, ok := body["search"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "fintech startups", search["query"])
		require.Equal(t, float64(10), search["count"])

		criteria, ok := search["criteria"].([]any)
		require.True(t, ok)
		require.Equal(t, map[string]any{"description": "founded after 2020"}, criteria[0])

		w.Write([]byte(`{"id":"ws-1","status":"running","createdAt":"2026-08-01T10:00:00Z"}`))
	})

	result, err := c.Execute(ctx, "exa_webset_create", map[string]any{
		"query": "fintech startups",

		"criteria": []any{" founded after 2020 ", ""},
	})
	require.NoError(t, err)

	require.Contains(t, result, "# Webset Created")
	require.Contains(t, result, "**Webset ID:** ws-1")
	require.Contains(t, result, "Use `exa_webset_items` with webset_id='ws-1' to fetch collected items.")
}

func TestItems(t *testing.T) {
	ctx := context.Background()

	c := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v0/websets/ws-1/items", r.URL.Path)

		w.Write([]byte(`{"data":[
			{"id":"item-1","title":"Acme","url":"https://acme.example","source":"search","properties":{"industry":"fintech"}}
		],"hasMore":true,"nextCursor":"abc"}`))
	})

	result, err := c.Execute(ctx, "exa_webset_items", map[string]any{"webset_id": "ws-1"})
	require.NoError(t, err)

	require.Contains(t, result, "# Webset Items: ws-1")
	require.Contains(t, result, "### 1. Acme")
	require.Contains(t, result, "**industry:** fintech")
	require.Contains(t, result, "Pass cursor='abc' to fetch the next page.")
}

func TestItemsEmpty(t *testing.T) {
	ctx := context.Background()

	c := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[],"hasMore":false}`))
	})

	result, err := c.Execute(ctx, "exa_webset_items", map[string]any{"webset_id": "ws-1"})
	require.NoError(t, err)

	require.Equal(t, "No items collected yet for webset: ws-1", result)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	c := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/v0/websets/ws-1", r.URL.Path)

		w.Write([]byte(`{"id":"ws-1","status":"deleted"}`))
	})

	result, err := c.Execute(ctx, "exa_webset_delete", map[string]any{"webset_id": "ws-1"})
	require.NoError(t, err)

	require.Equal(t, "Webset ws-1 deleted.", result)
}

func TestEnrich(t *testing.T) {
	ctx := context.Background()

	c := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v0/websets/ws-1/enrichments", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		require.Equal(t, "company headcount", body["description"])
		require.Equal(t, "number", body["format"])

		w.Write([]byte(`{"id":"ws-1","status":"running"}`))
	})

	result, err := c.Execute(ctx, "exa_webset_enrich", map[string]any{
		"webset_id": "ws-1",

		"description": "company headcount",
		"format":      "number",
	})
	require.NoError(t, err)

	require.Contains(t, result, "# Webset: ws-1")
}

func TestInvalidInput(t *testing.T) {
	ctx := context.Background()

	c := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request must be sent for invalid input")
	})

	result, err := c.Execute(ctx, "exa_webset_get", map[string]any{})
	require.NoError(t, err)
	require.Equal(t, "Error: Invalid input - webset_id is required. Please check your parameters.", result)
}

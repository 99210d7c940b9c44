package contents

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequestDefaults(t *testing.T) {
	request, _, err := parseRequest(map[string]any{
		"urls": []any{"example.com/article", "doc_abc123"},
	})

	require.NoError(t, err)
	require.Equal(t, []string{"https://example.com/article", "doc_abc123"}, request.IDs)

	// Text extraction is on by default, otherwise the response would be
	// empty.
	require.Equal(t, true, request.Text)
	require.Nil(t, request.Subpages)
}

func TestParseRequestExplicitContent(t *testing.T) {
	request, _, err := parseRequest(map[string]any{
		"urls": []any{"https://example.com"},

		"content": map[string]any{
			"include_summary": true,
		},
	})

	require.NoError(t, err)

	// An explicit content object replaces the text default.
	require.Nil(t, request.Text)
	require.Equal(t, true, request.Summary)
}

func TestParseRequestSubpages(t *testing.T) {
	request, _, err := parseRequest(map[string]any{
		"urls": []any{"https://example.com"},

		"subpages": float64(0),
	})

	require.NoError(t, err)
	require.NotNil(t, request.Subpages)
	require.Equal(t, 0, *request.Subpages)

	_, _, err = parseRequest(map[string]any{
		"urls": []any{"https://example.com"},

		"subpages": float64(6),
	})
	require.Error(t, err)
}

func TestParseRequestInvalid(t *testing.T) {
	_, _, err := parseRequest(map[string]any{})
	require.Error(t, err)

	_, _, err = parseRequest(map[string]any{"urls": []any{}})
	require.Error(t, err)

	_, _, err = parseRequest(map[string]any{"urls": []any{"", "   "}})
	require.Error(t, err)

	many := make([]any, 101)

	for i := range many {
		many[i] = "https://example.com"
	}

	_, _, err = parseRequest(map[string]any{"urls": many})
	require.Error(t, err)
}

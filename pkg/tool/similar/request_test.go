package similar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	request, responseFormat, err := parseRequest(map[string]any{
		"url": "example.com",
	})

	require.NoError(t, err)
	require.Equal(t, "https://example.com", request.URL)
	require.Equal(t, 10, request.NumResults)
	require.True(t, request.ExcludeSourceDomain)
	require.Equal(t, "markdown", string(responseFormat))
}

func TestParseRequestExcludeSourceDomain(t *testing.T) {
	request, _, err := parseRequest(map[string]any{
		"url": "https://example.com",

		"exclude_source_domain": false,
	})

	require.NoError(t, err)
	require.False(t, request.ExcludeSourceDomain)
}

func TestParseRequestInvalid(t *testing.T) {
	_, _, err := parseRequest(map[string]any{})
	require.Error(t, err)

	_, _, err = parseRequest(map[string]any{"url": "notaurl"})
	require.Error(t, err)

	_, _, err = parseRequest(map[string]any{"url": "example.com", "num_results": float64(0)})
	require.Error(t, err)
}

package search

import (
	"testing"

	"github.com/haldis/exa-mcp/pkg/exa"

	"github.com/stretchr/testify/require"
)

func TestParseRequestDefaults(t *testing.T) {
	request, responseFormat, err := parseRequest(map[string]any{
		"query": "AI safety",
	})

	require.NoError(t, err)
	require.Equal(t, "AI safety", request.Query)
	require.Equal(t, exa.SearchTypeAuto, request.Type)
	require.Equal(t, 10, request.NumResults)
	require.True(t, request.UseAutoprompt)

	require.Nil(t, request.Text)
	require.Nil(t, request.Highlights)
	require.Nil(t, request.Summary)

	require.Equal(t, "markdown", string(responseFormat))
}

func TestParseRequestBounds(t *testing.T) {
	_, _, err := parseRequest(map[string]any{"query": ""})
	require.Error(t, err)

	_, _, err = parseRequest(map[string]any{"query": "x", "num_results": float64(0)})
	require.Error(t, err)

	_, _, err = parseRequest(map[string]any{"query": "x", "num_results": float64(101)})
	require.Error(t, err)

	request, _, err := parseRequest(map[string]any{"query": "x", "num_results": float64(100)})
	require.NoError(t, err)
	require.Equal(t, 100, request.NumResults)
}

func TestParseRequestEnums(t *testing.T) {
	_, _, err := parseRequest(map[string]any{"query": "x", "search_type": "semantic"})
	require.Error(t, err)

	_, _, err = parseRequest(map[string]any{"query": "x", "category": "blog"})
	require.Error(t, err)

	_, _, err = parseRequest(map[string]any{"query": "x", "livecrawl": "never"})
	require.Error(t, err)

	request, _, err := parseRequest(map[string]any{
		"query": "x",

		"search_type": "neural",
		"category":    "research paper",
		"livecrawl":   "always",
	})

	require.NoError(t, err)
	require.Equal(t, exa.SearchTypeNeural, request.Type)
	require.Equal(t, exa.CategoryResearchPaper, request.Category)
	require.Equal(t, exa.LiveCrawlAlways, request.LiveCrawl)
}

func TestParseRequestDomains(t *testing.T) {
	request, _, err := parseRequest(map[string]any{
		"query": "x",

		"include_domains": []any{"  Foo.com ", "", "BAR.org"},
	})

	require.NoError(t, err)
	require.Equal(t, []string{"foo.com", "bar.org"}, request.IncludeDomains)

	many := make([]any, 51)

	for i := range many {
		many[i] = "example.com"
	}

	_, _, err = parseRequest(map[string]any{"query": "x", "include_domains": many})
	require.Error(t, err)
}

func TestParseCodeRequest(t *testing.T) {
	request, _, err := parseCodeRequest(map[string]any{
		"query": "context cancellation",
	})

	require.NoError(t, err)
	require.Equal(t, exa.CategoryGithub, request.Category)
	require.Equal(t, true, request.Highlights)
	require.Equal(t, true, request.Text)
	require.Equal(t, codeDomains, request.IncludeDomains)
}

func TestParseCodeRequestDomainUnion(t *testing.T) {
	request, _, err := parseCodeRequest(map[string]any{
		"query": "x",

		"include_domains": []any{"sourcegraph.com", "github.com"},
	})

	require.NoError(t, err)

	// Fixed code hosts stay first; caller domains are appended without
	// duplicates.
	require.Equal(t, append(append([]string{}, codeDomains...), "sourcegraph.com"), request.IncludeDomains)
}

package search

import (
	"fmt"
	"strings"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool/format"
)

func formatResults(data *exa.SearchResponse, query string) string {
	if len(data.Results) == 0 {
		return fmt.Sprintf("No results found for: '%s'", query)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# Search Results for: '%s'\n\n", query)
	fmt.Fprintf(&sb, "Found **%d** results\n", len(data.Results))

	if data.AutopromptString != "" {
		fmt.Fprintf(&sb, "\n*Query optimized to: \"%s\"*\n", data.AutopromptString)
	}

	sb.WriteString("\n")

	for i, result := range data.Results {
		format.WriteResult(&sb, result, i+1, "Relevance")
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatCodeResults(data *exa.SearchResponse, query string) string {
	if len(data.Results) == 0 {
		return fmt.Sprintf("No code results found for: '%s'", query)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# Code Search Results: '%s'\n\n", query)
	fmt.Fprintf(&sb, "Found **%d** code-related results\n\n", len(data.Results))

	for i, result := range data.Results {
		fmt.Fprintf(&sb, "### %d. %s\n", i+1, format.Title(result.Title))
		fmt.Fprintf(&sb, "**URL:** %s", format.URL(result.URL))

		if result.Score != 0 {
			fmt.Fprintf(&sb, "\n**Relevance:** %s", format.Score(result.Score))
		}

		if len(result.Highlights) > 0 {
			sb.WriteString("\n\n**Code Snippets:**")

			for _, highlight := range result.Highlights {
				fmt.Fprintf(&sb, "\n```\n%s\n```", highlight)
			}
		}

		if result.Text != "" {
			fmt.Fprintf(&sb, "\n\n**Context:**\n%s", format.Preview(result.Text, 500))
		}

		sb.WriteString("\n\n")
	}

	return sb.String()
}

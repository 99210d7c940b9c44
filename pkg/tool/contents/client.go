// Package contents implements the exa_get_contents tool for batch
// content extraction by URL or document ID.
package contents

import (
	"context"
	"fmt"
	"strings"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool"
	"github.com/haldis/exa-mcp/pkg/tool/format"
)

var _ tool.Provider = (*Client)(nil)

type Client struct {
	client *exa.Client
}

func New(client *exa.Client, options ...Option) (*Client, error) {
	c := &Client{
		client: client,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

type Option func(*Client)

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        "exa_get_contents",
			Description: "Extract full text, highlights or summaries from a list of URLs or document IDs (max 100). Useful for reading articles found via search.",

			Parameters: schema(),
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != "exa_get_contents" {
		return nil, tool.ErrInvalidTool
	}

	request, responseFormat, err := parseRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err), nil
	}

	data, err := c.client.Contents(ctx, request)

	if err != nil {
		return exa.ErrorMessage(err), nil
	}

	var response string

	if responseFormat == tool.FormatJSON {
		response = format.JSON(data.Raw)
	} else {
		response = formatResults(data)
	}

	return format.Truncate(response, "Request fewer URLs or use more specific content options."), nil
}

func formatResults(data *exa.ContentsResponse) string {
	if len(data.Results) == 0 {
		return "No content extracted from the provided URLs."
	}

	var sb strings.Builder

	sb.WriteString("# Extracted Content\n\n")
	fmt.Fprintf(&sb, "Successfully extracted content from **%d** URLs\n\n", len(data.Results))

	for i, result := range data.Results {
		writeResult(&sb, result, i+1)
		sb.WriteString("---\n\n")
	}

	return sb.String()
}

func writeResult(sb *strings.Builder, result exa.Result, index int) {
	fmt.Fprintf(sb, "## %d. %s\n", index, format.Title(result.Title))
	fmt.Fprintf(sb, "**URL:** %s\n", format.URL(result.URL))

	if result.PublishedDate != "" {
		fmt.Fprintf(sb, "**Published:** %s\n", result.PublishedDate)
	}

	if result.Author != "" {
		fmt.Fprintf(sb, "**Author:** %s\n", result.Author)
	}

	if len(result.Highlights) > 0 {
		sb.WriteString("\n### Highlights\n")

		for _, highlight := range result.Highlights {
			fmt.Fprintf(sb, "> %s\n", highlight)
		}
	}

	if result.Summary != "" {
		fmt.Fprintf(sb, "\n### Summary\n%s\n", result.Summary)
	}

	if result.Text != "" {
		fmt.Fprintf(sb, "\n### Full Content\n%s\n", result.Text)
	}

	sb.WriteString("\n")
}

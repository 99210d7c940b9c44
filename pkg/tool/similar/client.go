// Package similar implements the exa_find_similar tool.
package similar

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
			Name:        "exa_find_similar",
			Description: "Find web pages semantically similar to a given URL. Useful for finding related articles, competitor websites or alternative sources.",

			Parameters: schema(),
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != "exa_find_similar" {
		return nil, tool.ErrInvalidTool
	}

	request, responseFormat, err := parseRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err), nil
	}

	data, err := c.client.FindSimilar(ctx, request)

	if err != nil {
		return exa.ErrorMessage(err), nil
	}

	var response string

	if responseFormat == tool.FormatJSON {
		response = format.JSON(data.Raw)
	} else {
		response = formatResults(data, request.URL)
	}

	return format.Truncate(response, "Use more specific filters or reduce num_results."), nil
}

func formatResults(data *exa.SearchResponse, sourceURL string) string {
	if len(data.Results) == 0 {
		return "No similar pages found for: " + sourceURL
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# Pages Similar to: %s\n\n", sourceURL)
	fmt.Fprintf(&sb, "Found **%d** similar pages\n\n", len(data.Results))

	for i, result := range data.Results {
		format.WriteResult(&sb, result, i+1, "Similarity")
		sb.WriteString("\n")
	}

	return sb.String()
}

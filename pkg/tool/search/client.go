// Package search implements the exa_search and exa_code_search tools.
package search

import (
	"context"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool"
	"github.com/haldis/exa-mcp/pkg/tool/format"
)

var _ tool.Provider = (*Client)(nil)

// codeDomains is the fixed allow-list unioned with caller-supplied
// domains for code search. Product policy, not a technical constraint.
var codeDomains = []string{
	"github.com",
	"gist.github.com",
	"stackoverflow.com",
	"gitlab.com",
	"bitbucket.org",
}

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
			Name:        "exa_search",
			Description: "Search the web using Exa's neural search engine. Supports filtering by category, domains, publish/crawl dates and required/forbidden phrases, with optional content extraction.",

			Parameters: searchSchema(),
		},
		{
			Name:        "exa_code_search",
			Description: "Search code hosting platforms (GitHub, Stack Overflow, GitLab and similar) for code examples, implementations and technical discussions.",

			Parameters: codeSearchSchema(),
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	switch name {
	case "exa_search":
		return c.search(ctx, parameters), nil

	case "exa_code_search":
		return c.codeSearch(ctx, parameters), nil
	}

	return nil, tool.ErrInvalidTool
}

func (c *Client) search(ctx context.Context, parameters map[string]any) string {
	request, responseFormat, err := parseRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	data, err := c.client.Search(ctx, request)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	var response string

	if responseFormat == tool.FormatJSON {
		response = format.JSON(data.Raw)
	} else {
		response = formatResults(data, request.Query)
	}

	return format.Truncate(response, "Use more specific filters or reduce num_results.")
}

func (c *Client) codeSearch(ctx context.Context, parameters map[string]any) string {
	request, responseFormat, err := parseCodeRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	data, err := c.client.Search(ctx, request)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	var response string

	if responseFormat == tool.FormatJSON {
		response = format.JSON(data.Raw)
	} else {
		response = formatCodeResults(data, request.Query)
	}

	return format.Truncate(response, "Use more specific filters or reduce num_results.")
}

// Package webset implements the webset lifecycle tools backed by the
// batch-collection endpoint family of the Exa API.
package webset

import (
	"context"

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
			Name:        "exa_webset_create",
			Description: "Create a webset: a curated collection of web pages populated from a search query, built asynchronously by Exa.",

			Parameters: createSchema(),
		},
		{
			Name:        "exa_webset_get",
			Description: "Get the status and metadata of a webset.",

			Parameters: idSchema(),
		},
		{
			Name:        "exa_webset_list",
			Description: "List websets with pagination.",

			Parameters: listSchema(),
		},
		{
			Name:        "exa_webset_items",
			Description: "Fetch items collected into a webset.",

			Parameters: itemsSchema(),
		},
		{
			Name:        "exa_webset_enrich",
			Description: "Add an enrichment to a webset so each collected item gains a derived field, such as a summary or extracted attribute.",

			Parameters: enrichSchema(),
		},
		{
			Name:        "exa_webset_delete",
			Description: "Delete a webset.",

			Parameters: idSchema(),
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	switch name {
	case "exa_webset_create":
		return c.create(ctx, parameters), nil

	case "exa_webset_get":
		return c.get(ctx, parameters), nil

	case "exa_webset_list":
		return c.list(ctx, parameters), nil

	case "exa_webset_items":
		return c.items(ctx, parameters), nil

	case "exa_webset_enrich":
		return c.enrich(ctx, parameters), nil

	case "exa_webset_delete":
		return c.delete(ctx, parameters), nil
	}

	return nil, tool.ErrInvalidTool
}

func (c *Client) create(ctx context.Context, parameters map[string]any) string {
	request, responseFormat, err := parseCreateRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	data, err := c.client.CreateWebset(ctx, request)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	if responseFormat == tool.FormatJSON {
		return format.Truncate(format.JSON(data.Raw), truncateHint)
	}

	return format.Truncate(formatCreated(data, request.Search.Query), truncateHint)
}

func (c *Client) get(ctx context.Context, parameters map[string]any) string {
	websetID, responseFormat, err := parseIDRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	data, err := c.client.Webset(ctx, websetID)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	if responseFormat == tool.FormatJSON {
		return format.Truncate(format.JSON(data.Raw), truncateHint)
	}

	return format.Truncate(formatWebset(data), truncateHint)
}

func (c *Client) list(ctx context.Context, parameters map[string]any) string {
	limit, cursor, responseFormat, err := parseListRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	data, err := c.client.ListWebsets(ctx, limit, cursor)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	if responseFormat == tool.FormatJSON {
		return format.Truncate(format.JSON(data.Raw), truncateHint)
	}

	return format.Truncate(formatList(data), truncateHint)
}

func (c *Client) items(ctx context.Context, parameters map[string]any) string {
	websetID, responseFormat, err := parseIDRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	limit, cursor, _, err := parseListRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	data, err := c.client.WebsetItems(ctx, websetID, limit, cursor)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	if responseFormat == tool.FormatJSON {
		return format.Truncate(format.JSON(data.Raw), truncateHint)
	}

	return format.Truncate(formatItems(data, websetID), truncateHint)
}

func (c *Client) enrich(ctx context.Context, parameters map[string]any) string {
	websetID, request, responseFormat, err := parseEnrichRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	data, err := c.client.EnrichWebset(ctx, websetID, request)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	if responseFormat == tool.FormatJSON {
		return format.Truncate(format.JSON(data.Raw), truncateHint)
	}

	return format.Truncate(formatWebset(data), truncateHint)
}

func (c *Client) delete(ctx context.Context, parameters map[string]any) string {
	websetID, _, err := parseIDRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	if _, err := c.client.DeleteWebset(ctx, websetID); err != nil {
		return exa.ErrorMessage(err)
	}

	return "Webset " + websetID + " deleted."
}

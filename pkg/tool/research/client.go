// Package research implements the exa_research_start, exa_research_check
// and exa_research_list tools. Research tasks run remotely; every check
// re-fetches current state, nothing is cached locally.
package research

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
			Name:        "exa_research_start",
			Description: "Start an asynchronous deep research task. The task runs remotely; poll exa_research_check with the returned ID for results.",

			Parameters: startSchema(),
		},
		{
			Name:        "exa_research_check",
			Description: "Check the status of a research task and fetch its report once completed.",

			Parameters: checkSchema(),
		},
		{
			Name:        "exa_research_list",
			Description: "List research tasks and their statuses.",

			Parameters: listSchema(),
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	switch name {
	case "exa_research_start":
		return c.start(ctx, parameters), nil

	case "exa_research_check":
		return c.check(ctx, parameters), nil

	case "exa_research_list":
		return c.list(ctx, parameters), nil
	}

	return nil, tool.ErrInvalidTool
}

func (c *Client) start(ctx context.Context, parameters map[string]any) string {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	request, err := parseStartRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	task, err := c.client.CreateResearch(ctx, request)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	if responseFormat == tool.FormatJSON {
		return format.JSON(task.Raw)
	}

	return formatCreated(task)
}

func (c *Client) check(ctx context.Context, parameters map[string]any) string {
	researchID, responseFormat, err := parseCheckRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	task, err := c.client.Research(ctx, researchID)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	var response string

	if responseFormat == tool.FormatJSON {
		response = format.JSON(task.Raw)
	} else {
		response = formatTask(task)
	}

	return format.Truncate(response, "Research results may be large; consider using filters.")
}

func (c *Client) list(ctx context.Context, parameters map[string]any) string {
	limit, status, responseFormat, err := parseListRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err)
	}

	data, err := c.client.ListResearch(ctx)

	if err != nil {
		return exa.ErrorMessage(err)
	}

	var response string

	if responseFormat == tool.FormatJSON {
		response = format.JSON(data.Raw)
	} else {
		response = formatTaskList(data.All(), limit, status)
	}

	return format.Truncate(response, "Research results may be large; consider using filters.")
}

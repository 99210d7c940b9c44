// Package answer implements the exa_answer tool for direct answers with
// web citations.
package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool"
	"github.com/haldis/exa-mcp/pkg/tool/format"
)

var _ tool.Provider = (*Client)(nil)

const (
	maxQueryLength = 2000

	// Citation excerpts are shorter than the 500-character previews used
	// by the search formatters.
	citationPreview = 300
)

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
			Name:        "exa_answer",
			Description: "Get a direct answer to a question, generated from web sources and returned with citations. Useful for fact-checking and referenced explanations.",

			Parameters: schema(),
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != "exa_answer" {
		return nil, tool.ErrInvalidTool
	}

	request, responseFormat, err := parseRequest(parameters)

	if err != nil {
		return tool.InvalidInput(err), nil
	}

	data, err := c.client.Answer(ctx, request)

	if err != nil {
		return exa.ErrorMessage(err), nil
	}

	var response string

	if responseFormat == tool.FormatJSON {
		response = format.JSON(data.Raw)
	} else {
		response = formatAnswer(data)
	}

	return format.Truncate(response, "Use more specific questions for shorter answers."), nil
}

func parseRequest(parameters map[string]any) (*exa.AnswerRequest, tool.Format, error) {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return nil, "", err
	}

	query, _ := tool.String(parameters, "query")

	if err := tool.CheckLength("query", query, maxQueryLength); err != nil {
		return nil, "", err
	}

	request := &exa.AnswerRequest{
		Query: query,

		// Source text is always requested so citations carry excerpts.
		Text: true,
	}

	request.Model, _ = tool.String(parameters, "model")
	request.SystemPrompt, _ = tool.String(parameters, "system_prompt")

	return request, responseFormat, nil
}

func formatAnswer(data *exa.AnswerResponse) string {
	answer := data.Answer

	if answer == "" {
		answer = "No answer generated."
	}

	var sb strings.Builder

	sb.WriteString("# Answer\n\n")
	sb.WriteString(answer)
	sb.WriteString("\n")

	if len(data.Citations) > 0 {
		sb.WriteString("\n## Sources\n\n")

		for i, citation := range data.Citations {
			writeCitation(&sb, citation, i+1)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func writeCitation(sb *strings.Builder, citation exa.Citation, index int) {
	url := citation.URL

	if url == "" {
		url = "#"
	}

	fmt.Fprintf(sb, "**[%d]** [%s](%s)", index, format.Title(citation.Title), url)

	if citation.PublishedDate != "" {
		fmt.Fprintf(sb, " (%s)", citation.PublishedDate)
	}

	sb.WriteString("\n")

	if citation.Text != "" {
		fmt.Fprintf(sb, "   > %s\n", format.Preview(citation.Text, citationPreview))
	}
}

func schema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "the question to answer",
			},

			"model": map[string]any{
				"type":        "string",
				"description": "optional model for answer generation",
			},

			"system_prompt": map[string]any{
				"type":        "string",
				"description": "optional system prompt override for answer generation",
			},

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},

		"required": []string{"query"},
	}
}

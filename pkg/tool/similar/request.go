package similar

import (
	"fmt"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool"
)

const (
	defaultNumResults = 10
	maxNumResults     = 100

	maxURLLength = 2000
	maxDomains   = 50
)

func parseRequest(parameters map[string]any) (*exa.FindSimilarRequest, tool.Format, error) {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return nil, "", err
	}

	rawURL, _ := tool.String(parameters, "url")

	if err := tool.CheckLength("url", rawURL, maxURLLength); err != nil {
		return nil, "", err
	}

	sourceURL, err := tool.NormalizeURL(rawURL)

	if err != nil {
		return nil, "", err
	}

	request := &exa.FindSimilarRequest{
		URL: sourceURL,

		NumResults:          defaultNumResults,
		ExcludeSourceDomain: true,
	}

	num, ok, err := tool.Int(parameters, "num_results")

	if err != nil {
		return nil, "", err
	}

	if ok {
		if err := tool.CheckRange("num_results", num, 1, maxNumResults); err != nil {
			return nil, "", err
		}

		request.NumResults = num
	}

	if val, ok := tool.Strings(parameters, "include_domains"); ok {
		if len(val) > maxDomains {
			return nil, "", fmt.Errorf("include_domains must have at most %d entries", maxDomains)
		}

		request.IncludeDomains = tool.NormalizeDomains(val)
	}

	if val, ok := tool.Strings(parameters, "exclude_domains"); ok {
		if len(val) > maxDomains {
			return nil, "", fmt.Errorf("exclude_domains must have at most %d entries", maxDomains)
		}

		request.ExcludeDomains = tool.NormalizeDomains(val)
	}

	request.StartPublishedDate, _ = tool.String(parameters, "start_published_date")
	request.EndPublishedDate, _ = tool.String(parameters, "end_published_date")

	if val, ok := tool.Bool(parameters, "exclude_source_domain"); ok {
		request.ExcludeSourceDomain = val
	}

	content, err := tool.ParseContentOptions(parameters)

	if err != nil {
		return nil, "", err
	}

	request.Text = content.Text()
	request.Highlights = content.Highlights()
	request.Summary = content.Summary()

	return request, responseFormat, nil
}

func schema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "source URL to find similar pages for",
			},

			"num_results": map[string]any{
				"type":        "integer",
				"description": "number of similar results to return (1-100, default 10)",
			},

			"include_domains": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "only include results from these domains",
			},

			"exclude_domains": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "exclude results from these domains",
			},

			"start_published_date": map[string]any{
				"type":        "string",
				"description": "only results published after this date (YYYY-MM-DD)",
			},

			"end_published_date": map[string]any{
				"type":        "string",
				"description": "only results published before this date (YYYY-MM-DD)",
			},

			"exclude_source_domain": map[string]any{
				"type":        "boolean",
				"description": "exclude results from the source URL's own domain (default true)",
			},

			"content": tool.ContentSchema(),

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},

		"required": []string{"url"},
	}
}

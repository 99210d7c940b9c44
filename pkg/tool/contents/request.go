package contents

import (
	"fmt"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool"
)

const (
	maxURLs     = 100
	maxSubpages = 5
)

func parseRequest(parameters map[string]any) (*exa.ContentsRequest, tool.Format, error) {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return nil, "", err
	}

	rawURLs, ok := tool.Strings(parameters, "urls")

	if !ok || len(rawURLs) == 0 {
		return nil, "", fmt.Errorf("urls is required")
	}

	if len(rawURLs) > maxURLs {
		return nil, "", fmt.Errorf("urls must have at most %d entries", maxURLs)
	}

	var ids []string

	for _, raw := range rawURLs {
		id, err := tool.NormalizeID(raw)

		if err != nil {
			return nil, "", err
		}

		if id == "" {
			continue
		}

		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, "", fmt.Errorf("urls must contain at least one valid URL or ID")
	}

	request := &exa.ContentsRequest{
		IDs: ids,
	}

	if val, ok := tool.String(parameters, "livecrawl"); ok && val != "" {
		switch exa.LiveCrawl(val) {
		case exa.LiveCrawlFallback, exa.LiveCrawlPreferred, exa.LiveCrawlAlways:
			request.LiveCrawl = exa.LiveCrawl(val)

		default:
			return nil, "", fmt.Errorf("livecrawl must be 'fallback', 'preferred' or 'always'")
		}
	}

	subpages, ok, err := tool.Int(parameters, "subpages")

	if err != nil {
		return nil, "", err
	}

	if ok {
		if err := tool.CheckRange("subpages", subpages, 0, maxSubpages); err != nil {
			return nil, "", err
		}

		request.Subpages = &subpages
	}

	content, err := tool.ParseContentOptions(parameters)

	if err != nil {
		return nil, "", err
	}

	request.Text = content.Text()
	request.Highlights = content.Highlights()
	request.Summary = content.Summary()

	// Without explicit extraction options the tool still fetches text,
	// otherwise the response would carry no content at all.
	if request.Text == nil && request.Highlights == nil && request.Summary == nil {
		request.Text = true
	}

	return request, responseFormat, nil
}

func schema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"urls": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "URLs or document IDs to extract content from (max 100)",
			},

			"livecrawl": map[string]any{
				"type":        "string",
				"enum":        []string{"fallback", "preferred", "always"},
				"description": "live crawl mode: serve cached content or fetch fresh",
			},

			"subpages": map[string]any{
				"type":        "integer",
				"description": "number of subpages to crawl from each URL (0-5)",
			},

			"content": tool.ContentSchema(),

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},

		"required": []string{"urls"},
	}
}

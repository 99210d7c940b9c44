package webset

import (
	"fmt"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool"
)

const (
	maxQueryLength = 2000

	defaultCount = 10
	maxCount     = 1000

	defaultListLimit = 20
	maxListLimit     = 100
)

const truncateHint = "Use the cursor parameter to page through results."

func parseCreateRequest(parameters map[string]any) (*exa.CreateWebsetRequest, tool.Format, error) {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return nil, "", err
	}

	query, _ := tool.String(parameters, "query")

	if err := tool.CheckLength("query", query, maxQueryLength); err != nil {
		return nil, "", err
	}

	request := &exa.CreateWebsetRequest{
		Search: exa.WebsetSearch{
			Query: query,
			Count: defaultCount,
		},
	}

	count, ok, err := tool.Int(parameters, "count")

	if err != nil {
		return nil, "", err
	}

	if ok {
		if err := tool.CheckRange("count", count, 1, maxCount); err != nil {
			return nil, "", err
		}

		request.Search.Count = count
	}

	if val, ok := tool.Strings(parameters, "criteria"); ok {
		for _, description := range tool.NormalizePhrases(val) {
			request.Search.Criteria = append(request.Search.Criteria, map[string]any{
				"description": description,
			})
		}
	}

	return request, responseFormat, nil
}

func parseIDRequest(parameters map[string]any) (string, tool.Format, error) {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return "", "", err
	}

	websetID, _ := tool.String(parameters, "webset_id")

	if websetID == "" {
		return "", "", fmt.Errorf("webset_id is required")
	}

	return websetID, responseFormat, nil
}

func parseListRequest(parameters map[string]any) (int, string, tool.Format, error) {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return 0, "", "", err
	}

	limit := defaultListLimit

	val, ok, err := tool.Int(parameters, "limit")

	if err != nil {
		return 0, "", "", err
	}

	if ok {
		if err := tool.CheckRange("limit", val, 1, maxListLimit); err != nil {
			return 0, "", "", err
		}

		limit = val
	}

	cursor, _ := tool.String(parameters, "cursor")

	return limit, cursor, responseFormat, nil
}

func parseEnrichRequest(parameters map[string]any) (string, *exa.EnrichWebsetRequest, tool.Format, error) {
	websetID, responseFormat, err := parseIDRequest(parameters)

	if err != nil {
		return "", nil, "", err
	}

	description, _ := tool.String(parameters, "description")

	if description == "" {
		return "", nil, "", fmt.Errorf("description is required")
	}

	request := &exa.EnrichWebsetRequest{
		Description: description,

		Format: "text",
	}

	if val, ok := tool.String(parameters, "format"); ok && val != "" {
		switch val {
		case "text", "date", "number", "options", "email", "phone":
			request.Format = val

		default:
			return "", nil, "", fmt.Errorf("format must be 'text', 'date', 'number', 'options', 'email' or 'phone'")
		}
	}

	return websetID, request, responseFormat, nil
}

func createSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "search query describing the pages to collect",
			},

			"count": map[string]any{
				"type":        "integer",
				"description": "number of items to collect (1-1000, default 10)",
			},

			"criteria": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "verification criteria each item must satisfy",
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

func idSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"webset_id": map[string]any{
				"type":        "string",
				"description": "the webset ID returned by exa_webset_create",
			},

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},

		"required": []string{"webset_id"},
	}
}

func listSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"limit": map[string]any{
				"type":        "integer",
				"description": "maximum number of websets to return (1-100, default 20)",
			},

			"cursor": map[string]any{
				"type":        "string",
				"description": "pagination cursor from a previous response",
			},

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},
	}
}

func itemsSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"webset_id": map[string]any{
				"type":        "string",
				"description": "the webset ID returned by exa_webset_create",
			},

			"limit": map[string]any{
				"type":        "integer",
				"description": "maximum number of items to return (1-100, default 20)",
			},

			"cursor": map[string]any{
				"type":        "string",
				"description": "pagination cursor from a previous response",
			},

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},

		"required": []string{"webset_id"},
	}
}

func enrichSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"webset_id": map[string]any{
				"type":        "string",
				"description": "the webset ID returned by exa_webset_create",
			},

			"description": map[string]any{
				"type":        "string",
				"description": "what to extract or derive for each item",
			},

			"format": map[string]any{
				"type":        "string",
				"enum":        []string{"text", "date", "number", "options", "email", "phone"},
				"description": "result format of the enrichment, text by default",
			},

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},

		"required": []string{"webset_id", "description"},
	}
}

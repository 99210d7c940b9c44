package search

import (
	"github.com/haldis/exa-mcp/pkg/tool"
)

func searchSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "search query: a question, topic or keywords",
			},

			"num_results": map[string]any{
				"type":        "integer",
				"description": "number of results to return (1-100, default 10)",
			},

			"search_type": map[string]any{
				"type":        "string",
				"enum":        []string{"auto", "neural", "keyword"},
				"description": "'auto' (recommended), 'neural' for semantic or 'keyword' for exact matching",
			},

			"category": map[string]any{
				"type": "string",
				"enum": []string{
					"company", "news", "research paper", "github",
					"tweet", "pdf", "personal site", "linkedin profile",
				},
				"description": "restrict results to one content category",
			},

			"include_domains": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "only include results from these domains (e.g. arxiv.org)",
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

			"start_crawl_date": map[string]any{
				"type":        "string",
				"description": "only results crawled after this date (YYYY-MM-DD)",
			},

			"end_crawl_date": map[string]any{
				"type":        "string",
				"description": "only results crawled before this date (YYYY-MM-DD)",
			},

			"include_text": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "results must contain ALL of these phrases",
			},

			"exclude_text": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "results must NOT contain any of these phrases",
			},

			"use_autoprompt": map[string]any{
				"type":        "boolean",
				"description": "let Exa optimize the query (default true)",
			},

			"livecrawl": map[string]any{
				"type":        "string",
				"enum":        []string{"fallback", "preferred", "always"},
				"description": "live crawl mode for content extraction",
			},

			"content": tool.ContentSchema(),

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},

		"required": []string{"query"},
	}
}

func codeSearchSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "code-related search query (e.g. 'React useState examples')",
			},

			"num_results": map[string]any{
				"type":        "integer",
				"description": "number of results to return (1-100, default 10)",
			},

			"include_domains": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "additional domains to search beyond the code hosting platforms",
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

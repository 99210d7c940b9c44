package search

import (
	"fmt"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool"
)

const (
	defaultNumResults = 10
	maxNumResults     = 100

	maxQueryLength = 2000
	maxDomains     = 50
	maxPhrases     = 10
)

func parseRequest(parameters map[string]any) (*exa.SearchRequest, tool.Format, error) {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return nil, "", err
	}

	query, _ := tool.String(parameters, "query")

	if err := tool.CheckLength("query", query, maxQueryLength); err != nil {
		return nil, "", err
	}

	request := &exa.SearchRequest{
		Query: query,

		Type:          exa.SearchTypeAuto,
		NumResults:    defaultNumResults,
		UseAutoprompt: true,
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

	if val, ok := tool.String(parameters, "search_type"); ok && val != "" {
		searchType, err := parseSearchType(val)

		if err != nil {
			return nil, "", err
		}

		request.Type = searchType
	}

	if val, ok := tool.String(parameters, "category"); ok && val != "" {
		category, err := parseCategory(val)

		if err != nil {
			return nil, "", err
		}

		request.Category = category
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
	request.StartCrawlDate, _ = tool.String(parameters, "start_crawl_date")
	request.EndCrawlDate, _ = tool.String(parameters, "end_crawl_date")

	if val, ok := tool.Strings(parameters, "include_text"); ok {
		if len(val) > maxPhrases {
			return nil, "", fmt.Errorf("include_text must have at most %d entries", maxPhrases)
		}

		request.IncludeText = tool.NormalizePhrases(val)
	}

	if val, ok := tool.Strings(parameters, "exclude_text"); ok {
		if len(val) > maxPhrases {
			return nil, "", fmt.Errorf("exclude_text must have at most %d entries", maxPhrases)
		}

		request.ExcludeText = tool.NormalizePhrases(val)
	}

	if val, ok := tool.Bool(parameters, "use_autoprompt"); ok {
		request.UseAutoprompt = val
	}

	if val, ok := tool.String(parameters, "livecrawl"); ok && val != "" {
		liveCrawl, err := parseLiveCrawl(val)

		if err != nil {
			return nil, "", err
		}

		request.LiveCrawl = liveCrawl
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

func parseCodeRequest(parameters map[string]any) (*exa.SearchRequest, tool.Format, error) {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return nil, "", err
	}

	query, _ := tool.String(parameters, "query")

	if err := tool.CheckLength("query", query, maxQueryLength); err != nil {
		return nil, "", err
	}

	request := &exa.SearchRequest{
		Query: query,

		Type:          exa.SearchTypeAuto,
		NumResults:    defaultNumResults,
		UseAutoprompt: true,

		Category: exa.CategoryGithub,

		IncludeDomains: codeDomains,

		Highlights: true,
		Text:       true,
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

		request.IncludeDomains = unionDomains(codeDomains, tool.NormalizeDomains(val))
	}

	return request, responseFormat, nil
}

// unionDomains keeps the fixed code hosts first and appends caller
// domains not already present.
func unionDomains(fixed, extra []string) []string {
	result := make([]string, len(fixed))
	copy(result, fixed)

	seen := make(map[string]bool, len(fixed))

	for _, d := range fixed {
		seen[d] = true
	}

	for _, d := range extra {
		if seen[d] {
			continue
		}

		seen[d] = true
		result = append(result, d)
	}

	return result
}

func parseSearchType(val string) (exa.SearchType, error) {
	switch exa.SearchType(val) {
	case exa.SearchTypeAuto, exa.SearchTypeNeural, exa.SearchTypeKeyword:
		return exa.SearchType(val), nil
	}

	return "", fmt.Errorf("search_type must be 'auto', 'neural' or 'keyword'")
}

func parseCategory(val string) (exa.Category, error) {
	switch exa.Category(val) {
	case exa.CategoryCompany, exa.CategoryNews, exa.CategoryResearchPaper,
		exa.CategoryGithub, exa.CategoryTweet, exa.CategoryPDF,
		exa.CategoryPersonalSite, exa.CategoryLinkedInProfile:
		return exa.Category(val), nil
	}

	return "", fmt.Errorf("unknown category: %s", val)
}

func parseLiveCrawl(val string) (exa.LiveCrawl, error) {
	switch exa.LiveCrawl(val) {
	case exa.LiveCrawlFallback, exa.LiveCrawlPreferred, exa.LiveCrawlAlways:
		return exa.LiveCrawl(val), nil
	}

	return "", fmt.Errorf("livecrawl must be 'fallback', 'preferred' or 'always'")
}

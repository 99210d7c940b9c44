package exa

import (
	"encoding/json"
)

type SearchType string

const (
	SearchTypeAuto    SearchType = "auto"
	SearchTypeNeural  SearchType = "neural"
	SearchTypeKeyword SearchType = "keyword"
)

type Category string

const (
	CategoryCompany         Category = "company"
	CategoryNews            Category = "news"
	CategoryResearchPaper   Category = "research paper"
	CategoryGithub          Category = "github"
	CategoryTweet           Category = "tweet"
	CategoryPDF             Category = "pdf"
	CategoryPersonalSite    Category = "personal site"
	CategoryLinkedInProfile Category = "linkedin profile"
)

type LiveCrawl string

const (
	LiveCrawlFallback  LiveCrawl = "fallback"
	LiveCrawlPreferred LiveCrawl = "preferred"
	LiveCrawlAlways    LiveCrawl = "always"
)

type ResearchModel string

const (
	ResearchModelStandard ResearchModel = "exa-research"
	ResearchModelPro      ResearchModel = "exa-research-pro"
)

type ResearchStatus string

const (
	ResearchStatusPending   ResearchStatus = "pending"
	ResearchStatusRunning   ResearchStatus = "running"
	ResearchStatusCompleted ResearchStatus = "completed"
	ResearchStatusFailed    ResearchStatus = "failed"
)

// TextOptions and HighlightOptions are the object forms of the content
// extraction keys. A toggle without sub-limits is sent as boolean true
// instead, and an unset toggle is omitted entirely.

type TextOptions struct {
	MaxCharacters int `json:"maxCharacters,omitempty"`
}

type HighlightOptions struct {
	NumSentences int `json:"numSentences,omitempty"`
}

type SearchRequest struct {
	Query string `json:"query"`

	Type          SearchType `json:"type"`
	NumResults    int        `json:"numResults"`
	UseAutoprompt bool       `json:"useAutoprompt"`

	Category Category `json:"category,omitempty"`

	IncludeDomains []string `json:"includeDomains,omitempty"`
	ExcludeDomains []string `json:"excludeDomains,omitempty"`

	StartPublishedDate string `json:"startPublishedDate,omitempty"`
	EndPublishedDate   string `json:"endPublishedDate,omitempty"`
	StartCrawlDate     string `json:"startCrawlDate,omitempty"`
	EndCrawlDate       string `json:"endCrawlDate,omitempty"`

	IncludeText []string `json:"includeText,omitempty"`
	ExcludeText []string `json:"excludeText,omitempty"`

	LiveCrawl LiveCrawl `json:"livecrawl,omitempty"`

	Text       any `json:"text,omitempty"`
	Highlights any `json:"highlights,omitempty"`
	Summary    any `json:"summary,omitempty"`
}

type FindSimilarRequest struct {
	URL string `json:"url"`

	NumResults          int  `json:"numResults"`
	ExcludeSourceDomain bool `json:"excludeSourceDomain"`

	IncludeDomains []string `json:"includeDomains,omitempty"`
	ExcludeDomains []string `json:"excludeDomains,omitempty"`

	StartPublishedDate string `json:"startPublishedDate,omitempty"`
	EndPublishedDate   string `json:"endPublishedDate,omitempty"`

	Text       any `json:"text,omitempty"`
	Highlights any `json:"highlights,omitempty"`
	Summary    any `json:"summary,omitempty"`
}

type ContentsRequest struct {
	IDs []string `json:"ids"`

	LiveCrawl LiveCrawl `json:"livecrawl,omitempty"`
	Subpages  *int      `json:"subpages,omitempty"`

	Text       any `json:"text,omitempty"`
	Highlights any `json:"highlights,omitempty"`
	Summary    any `json:"summary,omitempty"`
}

type AnswerRequest struct {
	Query string `json:"query"`
	Text  bool   `json:"text"`

	Model        string `json:"model,omitempty"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
}

type CreateResearchRequest struct {
	Instructions string        `json:"instructions"`
	Model        ResearchModel `json:"model"`

	OutputSchema map[string]any `json:"outputSchema,omitempty"`
}

type Result struct {
	ID string `json:"id"`

	Title string `json:"title"`
	URL   string `json:"url"`

	PublishedDate string   `json:"publishedDate"`
	Author        string   `json:"author"`
	Score         float64  `json:"score"`
	Highlights    []string `json:"highlights"`
	Summary       string   `json:"summary"`
	Text          string   `json:"text"`
}

type SearchResponse struct {
	Results []Result `json:"results"`

	AutopromptString string `json:"autopromptString"`

	Raw json.RawMessage `json:"-"`
}

type ContentsResponse struct {
	Results []Result `json:"results"`

	Raw json.RawMessage `json:"-"`
}

type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`

	PublishedDate string `json:"publishedDate"`
	Text          string `json:"text"`
}

type AnswerResponse struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`

	Raw json.RawMessage `json:"-"`
}

type ResearchTask struct {
	ResearchID string `json:"researchId"`

	Status       ResearchStatus `json:"status"`
	Instructions string         `json:"instructions"`
	Model        string         `json:"model"`

	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt"`

	// Result is a string for report-style output or a structured object
	// when the task was created with an output schema.
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// ResultText renders the task result as plain text regardless of whether
// the remote service returned a string or a structured object.
func (t *ResearchTask) ResultText() string {
	if len(t.Result) == 0 {
		return ""
	}

	var text string

	if err := json.Unmarshal(t.Result, &text); err == nil {
		return text
	}

	return string(t.Result)
}

type ResearchList struct {
	Tasks []ResearchTask `json:"tasks"`
	Data  []ResearchTask `json:"data"`

	Raw json.RawMessage `json:"-"`
}

// All returns the task list regardless of the envelope key the remote
// service used.
func (l *ResearchList) All() []ResearchTask {
	if len(l.Tasks) > 0 {
		return l.Tasks
	}

	return l.Data
}

type WebsetSearch struct {
	Query string `json:"query"`
	Count int    `json:"count"`

	Criteria []map[string]any `json:"criteria,omitempty"`
}

type CreateWebsetRequest struct {
	Search WebsetSearch `json:"search"`
}

type Webset struct {
	ID string `json:"id"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	Raw json.RawMessage `json:"-"`
}

type WebsetItem struct {
	ID string `json:"id"`

	Source string `json:"source"`
	URL    string `json:"url"`
	Title  string `json:"title"`

	Properties map[string]any `json:"properties"`
}

type WebsetList struct {
	Data []Webset `json:"data"`

	NextCursor string `json:"nextCursor"`
	HasMore    bool   `json:"hasMore"`

	Raw json.RawMessage `json:"-"`
}

type WebsetItems struct {
	Data []WebsetItem `json:"data"`

	NextCursor string `json:"nextCursor"`
	HasMore    bool   `json:"hasMore"`

	Raw json.RawMessage `json:"-"`
}

type EnrichWebsetRequest struct {
	Description string `json:"description"`

	Format string `json:"format,omitempty"`
}

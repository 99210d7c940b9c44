package tool

import (
	"github.com/haldis/exa-mcp/pkg/exa"
)

// ContentOptions are the three content extraction toggles shared by the
// search-like tools. A disabled toggle never appears in the outbound
// payload; an enabled toggle without a sub-limit is sent as boolean true.
type ContentOptions struct {
	IncludeText   bool
	MaxCharacters int

	IncludeHighlights bool
	NumSentences      int

	IncludeSummary bool
}

func ParseContentOptions(parameters map[string]any) (*ContentOptions, error) {
	val, ok := Object(parameters, "content")

	if !ok {
		return nil, nil
	}

	options := &ContentOptions{}

	options.IncludeText, _ = Bool(val, "include_text")
	options.IncludeHighlights, _ = Bool(val, "include_highlights")
	options.IncludeSummary, _ = Bool(val, "include_summary")

	chars, ok, err := Int(val, "max_characters")

	if err != nil {
		return nil, err
	}

	if ok {
		if err := CheckRange("max_characters", chars, 100, 50000); err != nil {
			return nil, err
		}

		options.MaxCharacters = chars
	}

	sentences, ok, err := Int(val, "num_sentences")

	if err != nil {
		return nil, err
	}

	if ok {
		if err := CheckRange("num_sentences", sentences, 1, 10); err != nil {
			return nil, err
		}

		options.NumSentences = sentences
	}

	return options, nil
}

// Text returns the wire value for the text key: nil when disabled, true
// when enabled without a limit, an options object otherwise.
func (o *ContentOptions) Text() any {
	if o == nil || !o.IncludeText {
		return nil
	}

	if o.MaxCharacters > 0 {
		return &exa.TextOptions{MaxCharacters: o.MaxCharacters}
	}

	return true
}

func (o *ContentOptions) Highlights() any {
	if o == nil || !o.IncludeHighlights {
		return nil
	}

	if o.NumSentences > 0 {
		return &exa.HighlightOptions{NumSentences: o.NumSentences}
	}

	return true
}

func (o *ContentOptions) Summary() any {
	if o == nil || !o.IncludeSummary {
		return nil
	}

	return true
}

// ContentSchema is the JSON schema fragment for the content argument,
// shared by every tool that accepts extraction options.
func ContentSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "content extraction options",

		"properties": map[string]any{
			"include_text": map[string]any{
				"type":        "boolean",
				"description": "include full text content from pages",
			},

			"max_characters": map[string]any{
				"type":        "integer",
				"description": "maximum characters of text to extract per result (100-50000)",
			},

			"include_highlights": map[string]any{
				"type":        "boolean",
				"description": "include relevant text excerpts",
			},

			"num_sentences": map[string]any{
				"type":        "integer",
				"description": "number of highlight sentences per result (1-10)",
			},

			"include_summary": map[string]any{
				"type":        "boolean",
				"description": "include an AI-generated summary per result",
			},
		},
	}
}

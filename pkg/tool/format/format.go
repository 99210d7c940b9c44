// Package format holds the markdown building blocks shared by the tool
// formatters, plus the global response size cap.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/haldis/exa-mcp/pkg/exa"
)

// CharacterLimit bounds every tool response. The cap protects the
// caller's context window; truncation happens after formatting, never
// mid-item.
const CharacterLimit = 25000

const previewLength = 500

// Truncate cuts text over the character limit and appends a footer
// reporting the original length and a remediation hint. Text within the
// limit passes through unchanged. The cut never splits a rune.
func Truncate(text, hint string) string {
	if len(text) <= CharacterLimit {
		return text
	}

	truncated := text[:runeBoundary(text, CharacterLimit-200)]

	return truncated + fmt.Sprintf("\n\n---\n[Response truncated from %d characters. %s]", len(text), hint)
}

// runeBoundary backs off from a byte offset to the start of the rune it
// falls into.
func runeBoundary(text string, offset int) int {
	for offset > 0 && !utf8.RuneStart(text[offset]) {
		offset--
	}

	return offset
}

// JSON pretty-prints the raw response body verbatim.
func JSON(raw json.RawMessage) string {
	var buf bytes.Buffer

	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}

	return buf.String()
}

func Score(val float64) string {
	return strconv.FormatFloat(val, 'f', 2, 64)
}

func Preview(text string, max int) string {
	if len(text) > max {
		return text[:runeBoundary(text, max)] + "..."
	}

	return text
}

func Title(val string) string {
	if val == "" {
		return "Untitled"
	}

	return val
}

func URL(val string) string {
	if val == "" {
		return "N/A"
	}

	return val
}

// WriteResult renders one search-style result block. The score label
// differs between search ("Relevance") and find-similar ("Similarity").
func WriteResult(sb *strings.Builder, result exa.Result, index int, scoreLabel string) {
	fmt.Fprintf(sb, "### %d. %s\n", index, Title(result.Title))
	fmt.Fprintf(sb, "**URL:** %s", URL(result.URL))

	if result.PublishedDate != "" {
		fmt.Fprintf(sb, "\n**Published:** %s", result.PublishedDate)
	}

	if result.Author != "" {
		fmt.Fprintf(sb, "\n**Author:** %s", result.Author)
	}

	if result.Score != 0 {
		fmt.Fprintf(sb, "\n**%s:** %s", scoreLabel, Score(result.Score))
	}

	if len(result.Highlights) > 0 {
		sb.WriteString("\n\n**Highlights:**")

		for _, highlight := range highlightLimit(result.Highlights, 3) {
			fmt.Fprintf(sb, "\n> %s", highlight)
		}
	}

	if result.Summary != "" {
		fmt.Fprintf(sb, "\n\n**Summary:** %s", result.Summary)
	}

	if result.Text != "" {
		fmt.Fprintf(sb, "\n\n**Content Preview:**\n%s", Preview(result.Text, previewLength))
	}

	sb.WriteString("\n")
}

func highlightLimit(highlights []string, max int) []string {
	if len(highlights) > max {
		return highlights[:max]
	}

	return highlights
}

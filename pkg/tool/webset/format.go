package webset

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool/format"
)

func formatCreated(data *exa.Webset, query string) string {
	var sb strings.Builder

	sb.WriteString("# Webset Created\n\n")
	fmt.Fprintf(&sb, "**Webset ID:** %s\n", data.ID)
	fmt.Fprintf(&sb, "**Status:** %s\n", data.Status)

	if query != "" {
		fmt.Fprintf(&sb, "**Query:** %s\n", query)
	}

	if data.CreatedAt != "" {
		fmt.Fprintf(&sb, "**Created:** %s\n", data.CreatedAt)
	}

	fmt.Fprintf(&sb, "\nThe webset is being populated in the background. Use `exa_webset_items` with webset_id='%s' to fetch collected items.", data.ID)

	return sb.String()
}

func formatWebset(data *exa.Webset) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Webset: %s\n\n", data.ID)
	fmt.Fprintf(&sb, "**Status:** %s\n", data.Status)

	if data.CreatedAt != "" {
		fmt.Fprintf(&sb, "**Created:** %s\n", data.CreatedAt)
	}

	if data.UpdatedAt != "" {
		fmt.Fprintf(&sb, "**Updated:** %s\n", data.UpdatedAt)
	}

	return sb.String()
}

func formatList(data *exa.WebsetList) string {
	if len(data.Data) == 0 {
		return "No websets found."
	}

	var sb strings.Builder

	sb.WriteString("# Websets\n\n")
	fmt.Fprintf(&sb, "Found **%d** websets\n\n", len(data.Data))

	for _, item := range data.Data {
		fmt.Fprintf(&sb, "### %s\n", item.ID)
		fmt.Fprintf(&sb, "**Status:** %s\n", item.Status)

		if item.CreatedAt != "" {
			fmt.Fprintf(&sb, "**Created:** %s\n", item.CreatedAt)
		}

		sb.WriteString("\n")
	}

	if data.HasMore && data.NextCursor != "" {
		fmt.Fprintf(&sb, "More websets available. Pass cursor='%s' to fetch the next page.\n", data.NextCursor)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func formatItems(data *exa.WebsetItems, websetID string) string {
	if len(data.Data) == 0 {
		return fmt.Sprintf("No items collected yet for webset: %s", websetID)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# Webset Items: %s\n\n", websetID)
	fmt.Fprintf(&sb, "Found **%d** items\n\n", len(data.Data))

	for i, item := range data.Data {
		fmt.Fprintf(&sb, "### %d. %s\n", i+1, format.Title(item.Title))
		fmt.Fprintf(&sb, "**URL:** %s\n", format.URL(item.URL))

		if item.Source != "" {
			fmt.Fprintf(&sb, "**Source:** %s\n", item.Source)
		}

		keys := slices.Sorted(maps.Keys(item.Properties))

		for _, key := range keys {
			fmt.Fprintf(&sb, "**%s:** %v\n", key, item.Properties[key])
		}

		sb.WriteString("\n")
	}

	if data.HasMore && data.NextCursor != "" {
		fmt.Fprintf(&sb, "More items available. Pass cursor='%s' to fetch the next page.\n", data.NextCursor)
	}

	return strings.TrimRight(sb.String(), "\n")
}

package research

import (
	"fmt"
	"strings"

	"github.com/haldis/exa-mcp/pkg/exa"
)

func statusMarker(status exa.ResearchStatus) string {
	switch status {
	case exa.ResearchStatusPending:
		return "⏳"

	case exa.ResearchStatusRunning:
		return "🔄"

	case exa.ResearchStatusCompleted:
		return "✅"

	case exa.ResearchStatusFailed:
		return "❌"
	}

	return "❓"
}

func formatCreated(task *exa.ResearchTask) string {
	status := task.Status

	if status == "" {
		status = exa.ResearchStatusPending
	}

	var sb strings.Builder

	sb.WriteString("# Research Task Created\n\n")
	fmt.Fprintf(&sb, "**Task ID:** `%s`\n", task.ResearchID)
	fmt.Fprintf(&sb, "**Status:** %s\n", status)
	fmt.Fprintf(&sb, "**Instructions:** %s\n\n", task.Instructions)
	fmt.Fprintf(&sb, "Use `exa_research_check` with research_id='%s' to get results.", task.ResearchID)

	return sb.String()
}

func formatTask(task *exa.ResearchTask) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Research Results: %s\n\n", task.ResearchID)
	fmt.Fprintf(&sb, "**Status:** %s\n", task.Status)
	fmt.Fprintf(&sb, "**Instructions:** %s\n", task.Instructions)

	if task.CreatedAt != "" {
		fmt.Fprintf(&sb, "**Created:** %s\n", task.CreatedAt)
	}

	if task.CompletedAt != "" {
		fmt.Fprintf(&sb, "**Completed:** %s\n", task.CompletedAt)
	}

	sb.WriteString("\n")

	result := task.ResultText()

	switch {
	case result != "":
		sb.WriteString("## Report\n\n")
		sb.WriteString(result)

	case task.Status == exa.ResearchStatusRunning:
		sb.WriteString("*Research is still in progress. Check back later.*")

	case task.Status == exa.ResearchStatusPending:
		sb.WriteString("*Research task is queued and will start soon.*")

	case task.Error != "":
		fmt.Fprintf(&sb, "**Error:** %s", task.Error)
	}

	return sb.String()
}

func formatTaskList(tasks []exa.ResearchTask, limit int, status exa.ResearchStatus) string {
	var filtered []exa.ResearchTask

	for _, task := range tasks {
		if status != "" && task.Status != status {
			continue
		}

		filtered = append(filtered, task)

		if len(filtered) == limit {
			break
		}
	}

	if len(filtered) == 0 {
		return "No research tasks found."
	}

	var sb strings.Builder

	sb.WriteString("# Research Tasks\n\n")
	fmt.Fprintf(&sb, "Found **%d** tasks\n\n", len(filtered))

	for _, task := range filtered {
		fmt.Fprintf(&sb, "### %s Task: %s\n", statusMarker(task.Status), task.ResearchID)
		fmt.Fprintf(&sb, "**Status:** %s\n", task.Status)
		fmt.Fprintf(&sb, "**Instructions:** %s\n", task.Instructions)

		if task.CreatedAt != "" {
			fmt.Fprintf(&sb, "**Created:** %s\n", task.CreatedAt)
		}

		if task.CompletedAt != "" {
			fmt.Fprintf(&sb, "**Completed:** %s\n", task.CompletedAt)
		}

		if task.Error != "" {
			fmt.Fprintf(&sb, "**Error:** %s\n", task.Error)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

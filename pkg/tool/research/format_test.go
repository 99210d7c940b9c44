package research

import (
	"encoding/json"
	"testing"

	"github.com/haldis/exa-mcp/pkg/exa"

	"github.com/stretchr/testify/require"
)

func TestFormatCreated(t *testing.T) {
	result := formatCreated(&exa.ResearchTask{
		ResearchID: "task-1",
		Status:     exa.ResearchStatusPending,

		Instructions: "analyze trends",
	})

	require.Contains(t, result, "# Research Task Created")
	require.Contains(t, result, "**Task ID:** `task-1`")
	require.Contains(t, result, "Use `exa_research_check` with research_id='task-1' to get results.")
}

func TestFormatTaskRunning(t *testing.T) {
	result := formatTask(&exa.ResearchTask{
		ResearchID: "task-1",
		Status:     exa.ResearchStatusRunning,

		Instructions: "analyze trends",
	})

	require.Contains(t, result, "*Research is still in progress. Check back later.*")
	require.NotContains(t, result, "## Report")
}

func TestFormatTaskCompleted(t *testing.T) {
	result := formatTask(&exa.ResearchTask{
		ResearchID: "task-1",
		Status:     exa.ResearchStatusCompleted,

		Instructions: "analyze trends",
		CompletedAt:  "2026-08-01T10:05:00Z",

		Result: json.RawMessage(`"Findings: everything is fine."`),
	})

	require.Contains(t, result, "## Report\n\nFindings: everything is fine.")
	require.Contains(t, result, "**Completed:** 2026-08-01T10:05:00Z")
}

func TestFormatTaskFailed(t *testing.T) {
	result := formatTask(&exa.ResearchTask{
		ResearchID: "task-1",
		Status:     exa.ResearchStatusFailed,

		Instructions: "analyze trends",
		Error:        "model unavailable",
	})

	require.Contains(t, result, "**Error:** model unavailable")
}

func TestFormatTaskList(t *testing.T) {
	tasks := []exa.ResearchTask{
		{ResearchID: "task-1", Status: exa.ResearchStatusCompleted, Instructions: "a"},
		{ResearchID: "task-2", Status: exa.ResearchStatusRunning, Instructions: "b"},
		{ResearchID: "task-3", Status: exa.ResearchStatusCompleted, Instructions: "c"},
	}

	result := formatTaskList(tasks, 10, exa.ResearchStatusCompleted)

	require.Contains(t, result, "Found **2** tasks")
	require.Contains(t, result, "### ✅ Task: task-1")
	require.Contains(t, result, "### ✅ Task: task-3")
	require.NotContains(t, result, "task-2")

	result = formatTaskList(tasks, 1, "")
	require.Contains(t, result, "Found **1** tasks")

	result = formatTaskList(nil, 10, "")
	require.Equal(t, "No research tasks found.", result)
}

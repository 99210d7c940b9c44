package research

import (
	"fmt"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool"
)

const (
	maxInstructionsLength = 4096

	defaultListLimit = 10
	maxListLimit     = 100
)

func parseStartRequest(parameters map[string]any) (*exa.CreateResearchRequest, error) {
	instructions, _ := tool.String(parameters, "instructions")

	if err := tool.CheckLength("instructions", instructions, maxInstructionsLength); err != nil {
		return nil, err
	}

	request := &exa.CreateResearchRequest{
		Instructions: instructions,

		Model: exa.ResearchModelStandard,
	}

	if val, ok := tool.String(parameters, "model"); ok && val != "" {
		switch exa.ResearchModel(val) {
		case exa.ResearchModelStandard, exa.ResearchModelPro:
			request.Model = exa.ResearchModel(val)

		default:
			return nil, fmt.Errorf("model must be 'exa-research' or 'exa-research-pro'")
		}
	}

	if val, ok := tool.Object(parameters, "output_schema"); ok {
		request.OutputSchema = val
	}

	return request, nil
}

func parseCheckRequest(parameters map[string]any) (string, tool.Format, error) {
	responseFormat, err := tool.ParseFormat(parameters)

	if err != nil {
		return "", "", err
	}

	researchID, _ := tool.String(parameters, "research_id")

	if researchID == "" {
		return "", "", fmt.Errorf("research_id is required")
	}

	return researchID, responseFormat, nil
}

func parseListRequest(parameters map[string]any) (int, exa.ResearchStatus, tool.Format, error) {
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

	var status exa.ResearchStatus

	if val, ok := tool.String(parameters, "status"); ok && val != "" {
		switch exa.ResearchStatus(val) {
		case exa.ResearchStatusPending, exa.ResearchStatusRunning,
			exa.ResearchStatusCompleted, exa.ResearchStatusFailed:
			status = exa.ResearchStatus(val)

		default:
			return 0, "", "", fmt.Errorf("status must be 'pending', 'running', 'completed' or 'failed'")
		}
	}

	return limit, status, responseFormat, nil
}

func startSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"instructions": map[string]any{
				"type":        "string",
				"description": "natural language instructions for the research task",
			},

			"model": map[string]any{
				"type":        "string",
				"enum":        []string{"exa-research", "exa-research-pro"},
				"description": "'exa-research' (default) or 'exa-research-pro' for higher quality",
			},

			"output_schema": map[string]any{
				"type":        "object",
				"description": "optional JSON schema for structured research output",
			},

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},

		"required": []string{"instructions"},
	}
}

func checkSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"research_id": map[string]any{
				"type":        "string",
				"description": "the research task ID returned by exa_research_start",
			},

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},

		"required": []string{"research_id"},
	}
}

func listSchema() map[string]any {
	return map[string]any{
		"type": "object",

		"properties": map[string]any{
			"limit": map[string]any{
				"type":        "integer",
				"description": "maximum number of tasks to return (1-100, default 10)",
			},

			"status": map[string]any{
				"type":        "string",
				"enum":        []string{"pending", "running", "completed", "failed"},
				"description": "only list tasks with this status",
			},

			"response_format": map[string]any{
				"type":        "string",
				"enum":        []string{"markdown", "json"},
				"description": "output format, markdown by default",
			},
		},
	}
}

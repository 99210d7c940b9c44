package tool

import (
	"context"
	"errors"
)

var (
	ErrInvalidTool = errors.New("invalid tool")
)

type Tool struct {
	Name        string
	Description string

	Parameters map[string]any
}

// Provider exposes a set of tools. Execute returns the formatted result
// string; domain failures are rendered into the result rather than
// returned as errors, so the protocol error channel stays reserved for
// transport and schema problems.
type Provider interface {
	Tools(ctx context.Context) ([]Tool, error)
	Execute(ctx context.Context, name string, parameters map[string]any) (any, error)
}

// InvalidInput renders a validation failure into the fixed user-facing
// text, naming the offending parameter via the error detail.
func InvalidInput(err error) string {
	return "Error: Invalid input - " + err.Error() + ". Please check your parameters."
}

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat reads the response_format argument, defaulting to markdown.
func ParseFormat(parameters map[string]any) (Format, error) {
	val, ok := String(parameters, "response_format")

	if !ok || val == "" {
		return FormatMarkdown, nil
	}

	switch Format(val) {
	case FormatMarkdown, FormatJSON:
		return Format(val), nil
	}

	return "", errors.New("response_format must be 'markdown' or 'json'")
}

package server_test

import (
	"context"
	"errors"
	"testing"

	"github.com/haldis/exa-mcp/pkg/mcp/server"
	"github.com/haldis/exa-mcp/pkg/tool"

	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	tools []tool.Tool
	err   error
}

func (p *stubProvider) Tools(ctx context.Context) ([]tool.Tool, error) {
	return p.tools, p.err
}

func (p *stubProvider) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	return "ok", nil
}

func TestNew(t *testing.T) {
	p := &stubProvider{
		tools: []tool.Tool{
			{
				Name:        "echo",
				Description: "echoes input",

				Parameters: map[string]any{
					"type": "object",

					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
				},
			},
		},
	}

	s, err := server.New("test", "dev", []tool.Provider{p})
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestNewProviderError(t *testing.T) {
	p := &stubProvider{err: errors.New("boom")}

	_, err := server.New("test", "dev", []tool.Provider{p})
	require.Error(t, err)
}

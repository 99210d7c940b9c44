// Package server exposes tool providers over the Model Context Protocol,
// on stdio or as a streamable HTTP handler.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/haldis/exa-mcp/pkg/tool"

	"github.com/go-chi/chi/v5"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	http.Handler

	server *mcp.Server
}

func New(name, version string, tools []tool.Provider) (*Server, error) {
	serverImpl := &mcp.Implementation{
		Name:    name,
		Version: version,
	}

	serverOpts := &mcp.ServerOptions{
		KeepAlive: time.Second * 30,
	}

	server := mcp.NewServer(serverImpl, serverOpts)

	handlerOpts := &mcp.StreamableHTTPOptions{
		Stateless: true,
	}

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, handlerOpts)

	s := &Server{
		Handler: handler,

		server: server,
	}

	if err := s.register(context.Background(), tools); err != nil {
		return nil, err
	}

	return s, nil
}

// Run serves the stdio transport until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) Attach(r chi.Router) {
	r.Handle("/mcp", s)
	r.Handle("/mcp/*", s)
}

func (s *Server) register(ctx context.Context, providers []tool.Provider) error {
	for _, p := range providers {
		tools, err := p.Tools(ctx)

		if err != nil {
			return err
		}

		for _, t := range tools {
			data, _ := json.Marshal(t.Parameters)

			schema := new(jsonschema.Schema)

			if err := schema.UnmarshalJSON(data); err != nil {
				return err
			}

			handler := func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				var args map[string]any

				if len(req.Params.Arguments) > 0 {
					json.Unmarshal(req.Params.Arguments, &args)
				}

				result, err := p.Execute(ctx, t.Name, args)

				if err != nil {
					return nil, err
				}

				switch v := result.(type) {
				case *mcp.CallToolResult:
					return v, nil

				case string:
					return &mcp.CallToolResult{
						Content: []mcp.Content{
							&mcp.TextContent{
								Text: v,
							},
						},
					}, nil

				default:
					data, _ := json.Marshal(v)

					return &mcp.CallToolResult{
						Content: []mcp.Content{
							&mcp.TextContent{
								Text: string(data),
							},
						},
					}, nil
				}
			}

			tool := &mcp.Tool{
				Name:        t.Name,
				Description: t.Description,

				InputSchema: schema,
			}

			s.server.AddTool(tool, handler)
		}
	}

	return nil
}

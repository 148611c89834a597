// SPDX-License-Identifier: MPL-2.0

package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/toolshed-cli/toolshed/pkg/toolfile"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type (
	// Invoker executes a tool's run script with the given arguments and
	// returns its captured stdout.
	Invoker interface {
		Invoke(ctx context.Context, tool *toolfile.Tool, args map[string]any) (string, error)
	}

	// Options configures the served identity.
	Options struct {
		// Name is the server name announced to connecting clients.
		Name string
		// Version is the server version announced to connecting clients.
		Version string
		// Logger receives registration and call logs. When nil a stderr
		// logger is created.
		Logger *log.Logger
	}

	// Server wraps an MCP server with tools registered from descriptors.
	Server struct {
		mcp     *server.MCPServer
		invoker Invoker
		logger  *log.Logger
	}
)

// New creates a stdio server with one registered tool per descriptor.
// The descriptors must already be validated and merged; registration fails
// if a descriptor's input schema cannot be rendered as JSON.
func New(tools []toolfile.Tool, invoker Invoker, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "toolshed",
		})
	}

	mcpSrv := server.NewMCPServer(
		opts.Name,
		opts.Version,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		mcp:     mcpSrv,
		invoker: invoker,
		logger:  logger,
	}

	for _, tool := range tools {
		schemaJSON, err := tool.SchemaJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to render input schema for tool %q: %w", tool.Name, err)
		}

		mcpTool := mcp.NewToolWithRawSchema(tool.Name, tool.Description, schemaJSON)
		mcpSrv.AddTool(mcpTool, s.toolHandler(tool))
		logger.Debug("registered tool", "name", tool.Name)
	}

	logger.Info("server ready", "name", opts.Name, "tools", len(tools))

	return s, nil
}

// toolHandler routes a tool call to the invoker. Invocation failures are
// reported as in-band error results so the client sees the tool's own
// failure output rather than a transport error.
func (s *Server) toolHandler(tool toolfile.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		s.logger.Debug("tool call", "name", tool.Name, "args", len(args))

		out, err := s.invoker.Invoke(ctx, &tool, args)
		if err != nil {
			s.logger.Warn("tool call failed", "name", tool.Name, "err", err)
			return errorResult(err.Error()), nil
		}

		return textResult(out), nil
	}
}

// ServeStdio serves requests over stdin/stdout until the stream closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

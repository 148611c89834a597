// SPDX-License-Identifier: MPL-2.0

package mcpserver

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/toolshed-cli/toolshed/pkg/toolfile"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
)

type stubInvoker struct {
	out string
	err error

	gotTool *toolfile.Tool
	gotArgs map[string]any
}

func (s *stubInvoker) Invoke(_ context.Context, tool *toolfile.Tool, args map[string]any) (string, error) {
	s.gotTool = tool
	s.gotArgs = args
	return s.out, s.err
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func sampleTool(name string) toolfile.Tool {
	return toolfile.Tool{
		Name:        name,
		Description: "sample tool",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"target": map[string]any{"type": "string"},
			},
		},
		Run: toolfile.RunSpec{Script: "echo hi"},
	}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestNew_RegistersTools(t *testing.T) {
	tools := []toolfile.Tool{sampleTool("build"), sampleTool("deploy")}

	srv, err := New(tools, &stubInvoker{}, Options{
		Name:    "toolshed",
		Version: "0.1.0",
		Logger:  quietLogger(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if srv == nil {
		t.Fatal("New() returned nil server")
	}
}

func TestNew_UnrenderableSchema(t *testing.T) {
	tool := sampleTool("broken")
	tool.InputSchema = map[string]any{"bad": func() {}}

	_, err := New([]toolfile.Tool{tool}, &stubInvoker{}, Options{
		Name:   "toolshed",
		Logger: quietLogger(),
	})
	if err == nil {
		t.Fatal("New() with unrenderable schema should fail")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the tool: %v", err)
	}
}

func TestToolHandler_Success(t *testing.T) {
	inv := &stubInvoker{out: "done\n"}
	srv, err := New(nil, inv, Options{Name: "toolshed", Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tool := sampleTool("build")
	handler := srv.toolHandler(tool)

	args := map[string]any{"target": "dist"}
	result, err := handler(context.Background(), callRequest("build", args))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if result.IsError {
		t.Error("result should not be an error result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want mcp.TextContent", result.Content[0])
	}
	if text.Text != "done\n" {
		t.Errorf("text = %q, want invoker output", text.Text)
	}

	if inv.gotTool == nil || inv.gotTool.Name != "build" {
		t.Errorf("invoker got tool %+v, want build", inv.gotTool)
	}
	if inv.gotArgs["target"] != "dist" {
		t.Errorf("invoker got args %v", inv.gotArgs)
	}
}

func TestToolHandler_InvokerFailureIsInBand(t *testing.T) {
	inv := &stubInvoker{err: errors.New("script exited with status 2")}
	srv, err := New(nil, inv, Options{Name: "toolshed", Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	handler := srv.toolHandler(sampleTool("build"))

	result, err := handler(context.Background(), callRequest("build", nil))
	if err != nil {
		t.Fatalf("invoker failure should not be a transport error, got %v", err)
	}
	if !result.IsError {
		t.Fatal("result should be flagged as an error result")
	}
	text := result.Content[0].(mcp.TextContent)
	if !strings.Contains(text.Text, "status 2") {
		t.Errorf("error text = %q, want invoker message", text.Text)
	}
}

// Package mcp exposes the package operations as MCP tools, so agents
// can invoke them without the environment-variable calling convention.
package mcp

import (
	_ "embed"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tomwassing/brane"
	"github.com/tomwassing/brane/internal/config"
	"github.com/tomwassing/brane/internal/ops"
	"github.com/tomwassing/brane/internal/record"
	"github.com/tomwassing/brane/internal/runner"
)

//go:embed instructions.md
var Instructions string

// handler holds shared dependencies for all tool handlers.
type handler struct {
	engine *ops.Engine
	mode   record.CaptureMode
}

// NewServer creates an MCP server with every package operation
// registered as a tool. Tool payloads are the same YAML result records
// the CLI prints, wrapped for the configured capture mode.
func NewServer(cfg *config.Config, r *runner.Runner) *mcp.Server {
	h := &handler{
		engine: &ops.Engine{Config: cfg, Runner: r},
		mode:   cfg.Capture(),
	}

	mcpOpts := &mcp.ServerOptions{
		Instructions: Instructions,
		Capabilities: &mcp.ServerCapabilities{
			Tools: &mcp.ToolCapabilities{ListChanged: false},
		},
	}
	s := mcp.NewServer(&mcp.Implementation{Name: "brane", Version: brane.Version}, mcpOpts)

	mcp.AddTool(s, &mcp.Tool{
		Name: "brane_cp",
		Description: `Copy a file with cp and report the result record.

The record's output is "success", or a Stderr: block when cp complained.
Command failures are part of the record, not tool errors.`,
	}, h.copyHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name: "brane_ls",
		Description: `List a directory with ls and report the result record.

The record's output is the listing, "<no output>" when the directory is
empty, with a Stderr: block appended when ls complained.`,
	}, h.listHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name: "brane_cat",
		Description: `Print a file with cat and report the result record.

The record's output is the file content, "<no output>" when the file is
empty, with a Stderr: block appended when cat complained.`,
	}, h.readHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name: "brane_stall",
		Description: `Busy-wait for the given number of seconds, then report "success".

The wait occupies the server without yielding; keep values small.`,
	}, h.stallHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "brane_encode",
		Description: "Base64-encode a text value and report the result record.",
	}, h.encodeHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "brane_decode",
		Description: "Decode a base64 value to UTF-8 text and report the result record.",
	}, h.decodeHandler)

	return s
}

// textResult is a helper to build a text-only tool result.
func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

// errorResult is a helper to build an error tool result.
func errorResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil, nil
}

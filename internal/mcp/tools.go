package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tomwassing/brane/internal/codec"
	"github.com/tomwassing/brane/internal/input"
	"github.com/tomwassing/brane/internal/record"
)

// recordResult renders a record as the tool payload, wrapped for the
// configured capture mode.
func (h *handler) recordResult(rec record.Record) (*mcp.CallToolResult, any, error) {
	var b strings.Builder
	if err := record.Write(&b, rec, h.mode); err != nil {
		return errorResult(fmt.Sprintf("encoding record: %v", err))
	}
	return textResult(b.String())
}

type copyParams struct {
	Source string `json:"source" jsonschema:"Path of the file to copy."`
	Target string `json:"target" jsonschema:"Destination path."`
}

func (h *handler) copyHandler(ctx context.Context, req *mcp.CallToolRequest, params copyParams) (*mcp.CallToolResult, any, error) {
	rec, err := h.engine.Copy(ctx, input.CopyArgs{Source: params.Source, Target: params.Target})
	if err != nil {
		return errorResult(fmt.Sprintf("cp failed: %v", err))
	}
	return h.recordResult(rec)
}

type listParams struct {
	Directory string `json:"directory" jsonschema:"Path of the directory to list."`
}

func (h *handler) listHandler(ctx context.Context, req *mcp.CallToolRequest, params listParams) (*mcp.CallToolResult, any, error) {
	rec, err := h.engine.List(ctx, input.ListArgs{Dir: params.Directory})
	if err != nil {
		return errorResult(fmt.Sprintf("ls failed: %v", err))
	}
	return h.recordResult(rec)
}

type readParams struct {
	File string `json:"file" jsonschema:"Path of the file to print."`
}

func (h *handler) readHandler(ctx context.Context, req *mcp.CallToolRequest, params readParams) (*mcp.CallToolResult, any, error) {
	rec, err := h.engine.Read(ctx, input.ReadArgs{File: params.File})
	if err != nil {
		return errorResult(fmt.Sprintf("cat failed: %v", err))
	}
	return h.recordResult(rec)
}

type stallParams struct {
	Seconds int `json:"nseconds" jsonschema:"Number of seconds to busy-wait. Zero and negative values return immediately."`
}

func (h *handler) stallHandler(ctx context.Context, req *mcp.CallToolRequest, params stallParams) (*mcp.CallToolResult, any, error) {
	rec, err := h.engine.Stall(ctx, input.StallArgs{Seconds: params.Seconds})
	if err != nil {
		return errorResult(fmt.Sprintf("stall interrupted: %v", err))
	}
	return h.recordResult(rec)
}

type encodeParams struct {
	Input string `json:"input" jsonschema:"Text to base64-encode."`
}

func (h *handler) encodeHandler(ctx context.Context, req *mcp.CallToolRequest, params encodeParams) (*mcp.CallToolResult, any, error) {
	return h.recordResult(record.Record{Output: codec.Encode(params.Input)})
}

type decodeParams struct {
	Input string `json:"input" jsonschema:"Base64 value to decode. Newlines are stripped first."`
}

func (h *handler) decodeHandler(ctx context.Context, req *mcp.CallToolRequest, params decodeParams) (*mcp.CallToolResult, any, error) {
	decoded, err := codec.Decode(params.Input)
	if err != nil {
		return errorResult(err.Error())
	}
	return h.recordResult(record.Record{Output: decoded})
}

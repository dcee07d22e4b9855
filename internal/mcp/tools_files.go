// tools_files.go exposes the built-in file tools over MCP.
//
// The tools are declared explicitly rather than generated from their
// schemas so that clients receive hand-tuned parameter descriptions;
// execution still goes through the shared tool registry.

package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/themavik/nanobot/internal/log"
	"github.com/themavik/nanobot/internal/tool"
)

// registerFileTools registers the four built-in file tools with the
// registry and declares them to the MCP server.
func registerFileTools(s *server.MCPServer, h *handlers) {
	// The caller may have populated the registry already (the CLI shares
	// one registry between commands and the server).
	if h.reg.Get("read_file") == nil {
		tool.RegisterFileTools(h.reg, h.root)
	}

	s.AddTool(
		mcp.NewTool("read_file",
			mcp.WithDescription("Read and return the contents of a file"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the file to read")),
		),
		h.invoke("read_file"),
	)

	s.AddTool(
		mcp.NewTool("write_file",
			mcp.WithDescription("Write content to a file, creating parent directories as needed"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the file to write")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Content to write")),
		),
		h.invoke("write_file"),
	)

	s.AddTool(
		mcp.NewTool("edit_file",
			mcp.WithDescription("Replace exactly one occurrence of old_text with new_text in a file"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the file to edit")),
			mcp.WithString("old_text", mcp.Required(), mcp.Description("Exact text to find (must appear exactly once)")),
			mcp.WithString("new_text", mcp.Required(), mcp.Description("Replacement text")),
		),
		h.invoke("edit_file"),
	)

	s.AddTool(
		mcp.NewTool("list_dir",
			mcp.WithDescription("List the entries of a directory"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the directory to list")),
		),
		h.invoke("list_dir"),
	)
}

// invoke adapts a registered tool into an MCP tool handler. The tool
// protocol reports failures as "Error: ..." strings; those surface as
// MCP error results so clients can distinguish them from content.
// Every invocation is audit-logged under the "mcp:{tool}" source,
// mirroring what the CLI commands record.
func (h *handlers) invoke(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := argsMap(req)
		result := h.reg.Invoke(ctx, name, args)

		var err error
		if isFailure(result) {
			err = errors.New(result)
		}
		log.Event("mcp:"+name, actionFor(name)).
			Author("mcp").
			Path(tool.String(args, "path")).
			Write(err)

		return textResult(result), nil
	}
}

// actionFor maps a tool name to its audit-log action verb.
func actionFor(name string) string {
	switch name {
	case "read_file":
		return "read"
	case "write_file":
		return "write"
	case "edit_file":
		return "edit"
	case "list_dir":
		return "list"
	}
	return "invoke"
}

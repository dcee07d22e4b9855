// Package mcp implements the Model Context Protocol server, exposing
// nanobot's file tools and skill tools to LLMs. This enables AI
// assistants to read, write, and edit workspace files through a
// standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/themavik/nanobot/internal/tool"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
//
// Every file tool is confined to root. Any tools already present in
// reg (typically skill-derived tools) are exposed alongside the four
// built-in file tools.
func Serve(root string, reg *tool.Registry) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if reg == nil {
		reg = tool.NewRegistry()
	}
	h := &handlers{reg: reg, root: root}

	s := server.NewMCPServer(
		"nanobot",
		Version,
		server.WithToolCapabilities(true),
	)

	registerFileTools(s, h)
	registerSkillTools(s, h)

	slog.Info("nanobot MCP server ready",
		"version", Version, "transport", "stdio", "root", root,
		"tools", len(h.reg.Names()))

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the tool
// registry. All tool execution funnels through the registry so MCP
// clients and the CLI observe identical behaviour.
type handlers struct {
	reg  *tool.Registry
	root string
}

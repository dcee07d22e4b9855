// serve.go implements the "nanobot serve" command for MCP server
// operation.
//
// Separated from extension.go because serve has unique lifecycle
// requirements. Unlike other commands that run and exit, serve blocks
// indefinitely handling MCP requests over stdio.

package core

import (
	"github.com/spf13/cobra"

	"github.com/themavik/nanobot/cmd"
	"github.com/themavik/nanobot/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --root to confine file tools to a directory:
  nanobot serve --root /path/to/workspace`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(cmd.Root(), cmd.Tools())
}

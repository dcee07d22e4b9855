// Package extension provides the plugin architecture for nanobot.
// Extensions encapsulate related functionality (commands, agent tools)
// and register at init time, enabling modular feature development
// without touching core code.
package extension

import (
	"github.com/spf13/cobra"

	"github.com/themavik/nanobot/internal/tool"
)

// Extension defines the contract for nanobot extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// ToolProvider is an optional interface for extensions that contribute
// tools to the shared registry. Contributed tools are callable from the
// CLI (skill run) and exposed by the MCP server.
type ToolProvider interface {
	Extension
	Tools(ctx Context) []tool.Tool
}

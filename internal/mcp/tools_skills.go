// tools_skills.go exposes skill-derived tools over MCP.
//
// Skill tools carry their own JSON-Schema parameter declarations, built
// from the wrapped function signatures, so they are declared to the MCP
// server from those schemas rather than by hand.

package mcp

import (
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// builtins are declared explicitly in tools_files.go; everything else
// in the registry is a skill tool.
var builtins = map[string]bool{
	"read_file":  true,
	"write_file": true,
	"edit_file":  true,
	"list_dir":   true,
}

// registerSkillTools declares every non-builtin registry tool to the
// MCP server, using each tool's own parameter schema verbatim.
func registerSkillTools(s *server.MCPServer, h *handlers) {
	for _, t := range h.reg.All() {
		if builtins[t.Name()] {
			continue
		}
		schema, err := json.Marshal(t.Parameters())
		if err != nil {
			// A schema is plain structs; failure here is a
			// programming error worth surfacing, not fatal.
			slog.Error("skipping tool with unmarshallable schema",
				"tool", t.Name(), "error", err)
			continue
		}
		s.AddTool(
			mcp.NewToolWithRawSchema(t.Name(), t.Description(), schema),
			h.invoke(t.Name()),
		)
	}
}

// tools_util.go provides helpers for MCP tool parameter handling.
//
// Design: extraction is permissive (missing or mistyped arguments fall
// back to empty values) because MCP tools should be forgiving - the
// registry's tools validate their own required arguments and produce
// readable "Error: ..." messages, which an LLM can act on far more
// easily than a protocol-level type error.

package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// argsMap extracts the raw argument map from an MCP request. Returns an
// empty map rather than nil when the arguments are absent or not an
// object, so tools can index it without a nil check.
func argsMap(req mcp.CallToolRequest) map[string]any {
	if args, ok := req.Params.Arguments.(map[string]any); ok {
		return args
	}
	return map[string]any{}
}

// failurePrefixes are the exact message forms the tool protocol uses
// for failures. Matching them verbatim keeps file contents that merely
// start with the word "Error" from being misreported as tool errors.
var failurePrefixes = []string{
	"Error: ",
	"Error in ",
	"Error reading file:",
	"Error writing file:",
	"Error editing file:",
	"Error listing directory:",
}

// isFailure reports whether a tool result string is a protocol failure
// message rather than content.
func isFailure(s string) bool {
	for _, p := range failurePrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// textResult wraps a tool result string as an MCP result. Protocol
// failure messages become MCP error results, keeping the message text
// identical either way.
func textResult(s string) *mcp.CallToolResult {
	if isFailure(s) {
		return mcp.NewToolResultError(s)
	}
	return mcp.NewToolResultText(s)
}

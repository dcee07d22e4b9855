// Package file provides the file extension for workspace file
// operations. Registers commands: read, write, edit, ls.
//
// These commands mirror the agent-facing file tools so that humans and
// LLMs see identical semantics - the same sandbox, the same messages,
// the same single-occurrence edit rule. Each command file is separated
// to isolate its specific flag handling and output formatting logic.

package file

import (
	"github.com/spf13/cobra"

	"github.com/themavik/nanobot/extension"
	"github.com/themavik/nanobot/internal/config"
	"github.com/themavik/nanobot/internal/tool"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the file extension.
type Extension struct {
	root string
	cfg  *config.Config
}

// Compile-time interface compliance. Catches missing methods at build
// time rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension    = (*Extension)(nil)
	_ extension.ToolProvider = (*Extension)(nil)
)

// Name returns "file" - this extension handles workspace file operations.
func (e *Extension) Name() string { return "file" }

// Commands returns the file manipulation commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newReadCmd(),
		e.newWriteCmd(),
		e.newEditCmd(),
		e.newLsCmd(),
	}
}

// Tools contributes the four built-in file tools, confined to the
// workspace root, to the shared registry.
func (e *Extension) Tools(ctx extension.Context) []tool.Tool {
	e.root = ctx.Root()
	e.cfg = ctx.Config()
	return []tool.Tool{
		tool.NewReadFile(e.root),
		tool.NewWriteFile(e.root),
		tool.NewEditFile(e.root),
		tool.NewListDir(e.root),
	}
}

// maxContent returns the configured file size cap.
func (e *Extension) maxContent() int64 {
	if e.cfg == nil {
		return config.DefaultMaxContent
	}
	return e.cfg.MaxContent()
}

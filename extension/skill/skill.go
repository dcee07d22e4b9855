// Package skill provides the skill extension: plain Go functions
// wrapped as agent tools, plus commands to list and invoke them.
// Registers commands: skill.
package skill

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/themavik/nanobot/cmd"
	"github.com/themavik/nanobot/extension"
	"github.com/themavik/nanobot/internal/log"
	"github.com/themavik/nanobot/internal/tool"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the skill extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build
// time rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension    = (*Extension)(nil)
	_ extension.ToolProvider = (*Extension)(nil)
)

// Name returns "skill" - this extension provides function-backed tools.
func (e *Extension) Name() string { return "skill" }

// Commands returns the skill command group.
func (e *Extension) Commands() []*cobra.Command {
	c := &cobra.Command{
		Use:   "skill",
		Short: "List and run skill tools",
		Long:  `Skill tools are plain functions exposed through the tool registry.`,
	}
	c.AddCommand(e.newListCmd(), e.newRunCmd())
	return []*cobra.Command{c}
}

// Tools contributes the built-in skills to the shared registry.
func (e *Extension) Tools(_ extension.Context) []tool.Tool {
	return builtinTools()
}

// --- skill list ---

// listEntry is one row of skill list output.
type listEntry struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  tool.Schema `json:"parameters"`
}

func (e *Extension) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available tools",
		Args:  cobra.NoArgs,
		RunE:  e.runList,
	}
}

func (e *Extension) runList(_ *cobra.Command, _ []string) error {
	tools := cmd.Tools().All()

	if cmd.JSON() {
		rows := make([]listEntry, 0, len(tools))
		for _, t := range tools {
			rows = append(rows, listEntry{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			})
		}
		return cmd.PrintJSON(rows)
	}

	for _, t := range tools {
		fmt.Fprintf(cmd.Out(), "%-24s %s\n", t.Name(), t.Description())
	}
	return nil
}

// --- skill run ---

// runResult contains the outcome of a tool invocation.
type runResult struct {
	Tool   string `json:"tool"`
	Result string `json:"result"`
}

func (e *Extension) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <tool> [key=value ...]",
		Short: "Invoke a tool by name",
		Long: `Invoke a registered tool with named arguments.

  nanobot skill run read_file path=notes.txt
  nanobot skill run text_count text="one two three"

Values are parsed as JSON where possible (numbers, booleans, arrays),
falling back to plain strings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runRun,
	}
}

func (e *Extension) runRun(c *cobra.Command, args []string) error {
	name := args[0]

	toolArgs, err := parseArgs(args[1:])
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	result := cmd.Tools().Invoke(c.Context(), name, toolArgs)

	log.Event("skill:run", "invoke").
		Author(cmd.Author()).
		Detail("tool", name).
		Write(nil)

	if !cmd.JSON() {
		fmt.Fprintln(cmd.Out(), result)
	}
	return cmd.PrintJSON(runResult{Tool: name, Result: result})
}

// parseArgs converts key=value pairs into a tool argument map. Values
// that parse as JSON keep their JSON type; anything else is a string.
func parseArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", pair)
		}
		var v any
		if err := json.Unmarshal([]byte(value), &v); err == nil {
			args[key] = v
		} else {
			args[key] = value
		}
	}
	return args, nil
}

// edit.go implements the "nanobot edit" command for exact text
// replacement.
//
// Separated from file.go to isolate the failure reporting: a failed
// match prints the full diagnostic (closest-region diff plus hints) so
// the caller can correct old_text and retry.

package file

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themavik/nanobot/cmd"
	"github.com/themavik/nanobot/extension"
	"github.com/themavik/nanobot/internal/edit"
	"github.com/themavik/nanobot/internal/fsio"
	"github.com/themavik/nanobot/internal/log"
	"github.com/themavik/nanobot/internal/sandbox"
)

// editResult contains the outcome of an edit operation.
type editResult struct {
	Path string `json:"path"`
}

func (e *Extension) newEditCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "edit <path> [old] [new]",
		Short: "Edit a file via search/replace",
		Long: `Replace exactly one occurrence of old text with new text.

Positional or flag form:
  nanobot edit notes.txt "old text" "new text"
  nanobot edit notes.txt --old "old text" --new "new text"

The old text must appear exactly once. Zero matches print a diagnostic
showing the closest region of the file; multiple matches ask for more
surrounding context.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: e.runEdit,
	}
	c.Flags().String(extension.FlagOld, "", "Text to find")
	c.Flags().String(extension.FlagNew, "", "Text to replace with")
	return c
}

func (e *Extension) runEdit(c *cobra.Command, args []string) error {
	p := args[0]

	oldText, _ := c.Flags().GetString(extension.FlagOld)
	newText, _ := c.Flags().GetString(extension.FlagNew)
	if len(args) >= 3 {
		oldText, newText = args[1], args[2]
	}
	if oldText == "" {
		return cmd.PrintJSONError(errors.New("old text is required (use positional args or --old flag)"))
	}

	var err error
	defer func() {
		log.Event("file:edit", "edit").Author(cmd.Author()).Path(p).Write(err)
	}()

	resolved, err := sandbox.Resolve(p, cmd.Root())
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("edit %q: %w", p, err))
	}

	content, err := fsio.ReadFile(resolved)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("edit %q: %w", p, err))
	}

	updated, err := edit.Apply(content, oldText, newText)
	if err != nil {
		// The typed errors carry the full diagnostic in Error().
		return cmd.PrintJSONError(fmt.Errorf("edit %q: %w", p, err))
	}

	if err = fsio.WriteFile(resolved, updated); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("edit %q: %w", p, err))
	}

	if !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Edited %s\n", p)
	}
	return cmd.PrintJSON(editResult{Path: p})
}

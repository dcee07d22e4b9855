// ls.go implements the "nanobot ls" command for listing directories.
//
// Separated from file.go to isolate listing and formatting logic.
//
// Design: Ls lists entries sorted by name - the deterministic ordering
// agents rely on. The -l flag adds size and mode from the filesystem.

package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/themavik/nanobot/cmd"
	"github.com/themavik/nanobot/extension"
	"github.com/themavik/nanobot/internal/fsio"
	"github.com/themavik/nanobot/internal/log"
	"github.com/themavik/nanobot/internal/sandbox"
)

// lsEntry is one row of ls output.
type lsEntry struct {
	Name string `json:"name"`
	Dir  bool   `json:"dir"`
	Size int64  `json:"size,omitempty"`
	Mode string `json:"mode,omitempty"`
}

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a directory",
		Long:  `List the entries of a directory. Defaults to the current directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format with size and mode")
	return c
}

func (e *Extension) runLs(c *cobra.Command, args []string) error {
	long, _ := c.Flags().GetBool(extension.FlagLong)
	p := "."
	if len(args) > 0 {
		p = args[0]
	}

	var err error
	defer func() {
		log.Event("file:ls", "list").Author(cmd.Author()).Path(p).Write(err)
	}()

	resolved, err := sandbox.Resolve(p, cmd.Root())
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls %q: %w", p, err))
	}

	entries, err := fsio.ListDir(resolved)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls %q: %w", p, err))
	}

	rows := make([]lsEntry, 0, len(entries))
	for _, entry := range entries {
		row := lsEntry{Name: entry.Name, Dir: entry.Dir}
		if long {
			if info, statErr := os.Stat(filepath.Join(resolved, entry.Name)); statErr == nil {
				row.Size = info.Size()
				row.Mode = info.Mode().String()
			}
		}
		rows = append(rows, row)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintf(cmd.Out(), "Directory %s is empty\n", p)
		return nil
	}

	for _, row := range rows {
		name := row.Name
		if row.Dir {
			name += "/"
		}
		if long {
			fmt.Fprintf(cmd.Out(), "%-11s %8d  %s\n", row.Mode, row.Size, name)
		} else {
			fmt.Fprintln(cmd.Out(), name)
		}
	}
	return nil
}

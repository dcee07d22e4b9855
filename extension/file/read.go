// read.go implements the "nanobot read" command for reading file
// contents.
//
// Separated from file.go to isolate output formatting logic including
// line numbering and terminal rendering with glamour.
//
// Design: Terminal output of markdown files gets glamour rendering;
// pipe/redirect (and --raw) gets raw bytes. Rendering failures fall
// back to raw output rather than erroring - display is best-effort.

package file

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/themavik/nanobot/cmd"
	"github.com/themavik/nanobot/extension"
	"github.com/themavik/nanobot/internal/fsio"
	"github.com/themavik/nanobot/internal/log"
	"github.com/themavik/nanobot/internal/match"
	"github.com/themavik/nanobot/internal/sandbox"
)

// readResult contains the outcome of a read operation.
type readResult struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (e *Extension) newReadCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "read <path>",
		Short: "Read a file",
		Long:  `Output the contents of a file to stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE:  e.runRead,
	}
	c.Flags().BoolP(extension.FlagNumber, "n", false, "Number all output lines")
	c.Flags().Bool(extension.FlagRaw, false, "Output raw content without rendering")
	return c
}

func (e *Extension) runRead(c *cobra.Command, args []string) error {
	lineNums, _ := c.Flags().GetBool(extension.FlagNumber)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	p := args[0]

	var err error
	defer func() {
		log.Event("file:read", "read").Author(cmd.Author()).Path(p).Write(err)
	}()

	resolved, err := sandbox.Resolve(p, cmd.Root())
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("read %q: %w", p, err))
	}

	if info, statErr := os.Stat(resolved); statErr == nil && info.Size() > e.maxContent() {
		err = fmt.Errorf("file exceeds size limit (%d > %d bytes)", info.Size(), e.maxContent())
		return cmd.PrintJSONError(fmt.Errorf("read %q: %w", p, err))
	}

	content, err := fsio.ReadFile(resolved)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("read %q: %w", p, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(readResult{Path: p, Content: content})
	}

	if lineNums {
		for i, line := range match.Lines(content) {
			fmt.Fprintf(cmd.Out(), "%6d\t%s", i+1, line)
		}
		if !strings.HasSuffix(content, "\n") && content != "" {
			fmt.Fprintln(cmd.Out())
		}
		return nil
	}

	// Render markdown with glamour if TTY and not --raw
	if !raw && strings.HasSuffix(resolved, ".md") && term.IsTerminal(int(os.Stdout.Fd())) {
		if rendered, renderErr := glamour.Render(content, "dark"); renderErr == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return nil
		}
	}

	fmt.Fprint(cmd.Out(), content)
	return nil
}

// write.go implements the "nanobot write" command for creating and
// updating files.
//
// Separated from file.go to isolate input handling (stdin, argument,
// file).
//
// Design: Write accepts content from multiple sources in priority order:
// 1. Direct argument (for short content)
// 2. File flag (for existing files)
// 3. Stdin (for piping)
// This flexibility supports both interactive and scripted workflows.

package file

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/themavik/nanobot/cmd"
	"github.com/themavik/nanobot/extension"
	"github.com/themavik/nanobot/internal/fsio"
	"github.com/themavik/nanobot/internal/log"
	"github.com/themavik/nanobot/internal/sandbox"
)

// writeResult contains the outcome of a write operation.
type writeResult struct {
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

func (e *Extension) newWriteCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "write <path> [content]",
		Short: "Write a file",
		Long:  `Create or overwrite a file. Content from argument, stdin, or -f flag. Parent directories are created as needed.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  e.runWrite,
	}
	c.Flags().StringP(extension.FlagFile, "f", "", "Read content from file")
	return c
}

func (e *Extension) runWrite(c *cobra.Command, args []string) error {
	p := args[0]
	var content string

	file, _ := c.Flags().GetString(extension.FlagFile)
	switch {
	case len(args) >= 2:
		content = args[1]
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("read file %q: %w", file, err))
		}
		content = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("read stdin: %w", err))
		}
		content = string(data)
	}

	var err error
	defer func() {
		log.Event("file:write", "write").
			Author(cmd.Author()).
			Path(p).
			Detail("bytes", len(content)).
			Write(err)
	}()

	resolved, err := sandbox.Resolve(p, cmd.Root())
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("write %q: %w", p, err))
	}

	if int64(len(content)) > e.maxContent() {
		err = fmt.Errorf("content exceeds size limit (%d > %d bytes)", len(content), e.maxContent())
		return cmd.PrintJSONError(fmt.Errorf("write %q: %w", p, err))
	}

	if err = fsio.WriteFile(resolved, content); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("write %q: %w", p, err))
	}

	if !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Wrote %d bytes to %s\n", len(content), p)
	}
	return cmd.PrintJSON(writeResult{Path: p, Bytes: len(content)})
}

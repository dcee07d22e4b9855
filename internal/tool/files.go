// files.go implements the built-in file tools: read_file, write_file,
// edit_file and list_dir.
//
// Separated from tool.go to keep the protocol types apart from the
// concrete tools. Each tool resolves its path through the sandbox, does
// its I/O through fsio, and converts every failure into a readable
// error string for the agent.

package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/themavik/nanobot/internal/edit"
	"github.com/themavik/nanobot/internal/fsio"
	"github.com/themavik/nanobot/internal/sandbox"
)

// fileTool is the common shape of the built-in file tools. Root, when
// non-empty, confines every path to that directory.
type fileTool struct {
	name        string
	description string
	schema      Schema
	run         func(ctx context.Context, args map[string]any) string
}

func (t *fileTool) Name() string        { return t.name }
func (t *fileTool) Description() string { return t.description }
func (t *fileTool) Parameters() Schema  { return t.schema }

func (t *fileTool) Execute(ctx context.Context, args map[string]any) string {
	return t.run(ctx, args)
}

// pathProp is the parameter description shared by all file tools.
func pathProp(desc string) Property {
	return Property{Type: "string", Description: desc}
}

// NewReadFile returns the read_file tool. The file's entire content is
// the result, so the agent sees exactly what is on disk.
func NewReadFile(root string) Tool {
	return &fileTool{
		name:        "read_file",
		description: "Read the contents of a file at the given path.",
		schema: ObjectSchema(map[string]Property{
			"path": pathProp("The file path to read"),
		}, []string{"path"}),
		run: func(_ context.Context, args map[string]any) string {
			path := String(args, "path")
			resolved, err := sandbox.Resolve(path, root)
			if err != nil {
				return "Error: " + err.Error()
			}
			content, err := fsio.ReadFile(resolved)
			switch {
			case errors.Is(err, fsio.ErrNotFound):
				return fmt.Sprintf("Error: File not found: %s", path)
			case errors.Is(err, fsio.ErrNotAFile):
				return fmt.Sprintf("Error: Not a file: %s", path)
			case err != nil:
				return fmt.Sprintf("Error reading file: %v", err)
			}
			return content
		},
	}
}

// NewWriteFile returns the write_file tool. Parent directories are
// created as needed; an existing file is replaced wholesale.
func NewWriteFile(root string) Tool {
	return &fileTool{
		name:        "write_file",
		description: "Write content to a file at the given path. Creates parent directories if needed.",
		schema: ObjectSchema(map[string]Property{
			"path":    pathProp("The file path to write to"),
			"content": {Type: "string", Description: "The content to write"},
		}, []string{"path", "content"}),
		run: func(_ context.Context, args map[string]any) string {
			path := String(args, "path")
			content := String(args, "content")
			resolved, err := sandbox.Resolve(path, root)
			if err != nil {
				return "Error: " + err.Error()
			}
			if err := fsio.WriteFile(resolved, content); err != nil {
				return fmt.Sprintf("Error writing file: %v", err)
			}
			return fmt.Sprintf("Successfully wrote %d bytes to %s", len(content), path)
		},
	}
}

// NewEditFile returns the edit_file tool: exact single-occurrence
// replacement with the diagnostic fallback from the edit package.
func NewEditFile(root string) Tool {
	return &fileTool{
		name:        "edit_file",
		description: "Edit a file by replacing old_text with new_text. The old_text must exist exactly in the file.",
		schema: ObjectSchema(map[string]Property{
			"path":     pathProp("The file path to edit"),
			"old_text": {Type: "string", Description: "The exact text to find and replace"},
			"new_text": {Type: "string", Description: "The text to replace with"},
		}, []string{"path", "old_text", "new_text"}),
		run: func(_ context.Context, args map[string]any) string {
			path := String(args, "path")
			oldText := String(args, "old_text")
			newText := String(args, "new_text")

			resolved, err := sandbox.Resolve(path, root)
			if err != nil {
				return "Error: " + err.Error()
			}
			content, err := fsio.ReadFile(resolved)
			switch {
			case errors.Is(err, fsio.ErrNotFound):
				return fmt.Sprintf("Error: File not found: %s", path)
			case err != nil:
				return fmt.Sprintf("Error editing file: %v", err)
			}

			newContent, err := edit.Apply(content, oldText, newText)
			if err != nil {
				var noMatch *edit.NoMatchError
				var ambiguous *edit.AmbiguousError
				switch {
				case errors.As(err, &noMatch):
					return fmt.Sprintf("Error: old_text not found in %s.\nold_text has %d lines; file has %d lines.\n%s",
						path, noMatch.OldLines, noMatch.FileLines, noMatch.Diagnostic)
				case errors.As(err, &ambiguous):
					return fmt.Sprintf("Warning: old_text appears %d times in %s. Please provide more surrounding context to make the match unique.",
						ambiguous.Count, path)
				default:
					return fmt.Sprintf("Error editing file: %v", err)
				}
			}

			if err := fsio.WriteFile(resolved, newContent); err != nil {
				return fmt.Sprintf("Error editing file: %v", err)
			}
			return fmt.Sprintf("Successfully edited %s", path)
		},
	}
}

// NewListDir returns the list_dir tool. Directories and files are
// prefixed with 📁 and 📄 so the agent can tell them apart at a glance.
func NewListDir(root string) Tool {
	return &fileTool{
		name:        "list_dir",
		description: "List the contents of a directory.",
		schema: ObjectSchema(map[string]Property{
			"path": pathProp("The directory path to list"),
		}, []string{"path"}),
		run: func(_ context.Context, args map[string]any) string {
			path := String(args, "path")
			resolved, err := sandbox.Resolve(path, root)
			if err != nil {
				return "Error: " + err.Error()
			}
			entries, err := fsio.ListDir(resolved)
			switch {
			case errors.Is(err, fsio.ErrNotFound):
				return fmt.Sprintf("Error: Directory not found: %s", path)
			case errors.Is(err, fsio.ErrNotADirectory):
				return fmt.Sprintf("Error: Not a directory: %s", path)
			case err != nil:
				return fmt.Sprintf("Error listing directory: %v", err)
			}
			if len(entries) == 0 {
				return fmt.Sprintf("Directory %s is empty", path)
			}

			items := make([]string, len(entries))
			for i, e := range entries {
				prefix := "📄 "
				if e.Dir {
					prefix = "📁 "
				}
				items[i] = prefix + e.Name
			}
			return strings.Join(items, "\n")
		},
	}
}

// RegisterFileTools registers the four built-in file tools, confined to
// root when it is non-empty.
func RegisterFileTools(r *Registry, root string) {
	r.Register(NewReadFile(root))
	r.Register(NewWriteFile(root))
	r.Register(NewEditFile(root))
	r.Register(NewListDir(root))
}

// Package log provides centralised audit logging for nanobot tool
// invocations. Entries are stored in ~/.nanobot/log/nanobot-log.db and
// track CLI commands and MCP tool calls across workspaces.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("file:edit", "edit").
//		Author(cmd.Author()).
//		Path(p).
//		Write(err)
//
//	log.Event("mcp:list_dir", "list").
//		Detail("entries", len(entries)).
//		Write(nil)
//
// The source parameter follows the format "{extension}:{command}" for
// CLI commands or "mcp:{tool}" for MCP tools.
package log

import (
	"sync"
	"time"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single audit log entry.
type Entry struct {
	Source string // e.g., "file:edit", "mcp:read_file"
	Author string // who performed the action
	Action string // verb: read, write, edit, list, run
	Path   string // filesystem path the operation targeted

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // operation-specific data
}

// Builder constructs a log entry using a fluent API. Create with
// [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "file:read")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:edit_file")
//
// The action is the verb: "read", "write", "edit", "list", "run".
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation. For CLI commands this is the
// configured author; MCP tools default to "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the filesystem path this operation affects.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Detail adds a key-value pair to the entry's detail map. Use for
// operation-specific data that doesn't fit the standard fields: byte
// counts, entry counts, tool arguments. May be called repeatedly.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the entry to the database, deriving success/failure from
// err. This is the standard way to complete an entry:
//
//	content, err := fsio.ReadFile(p)
//	log.Event("file:read", "read").Path(p).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Log writes an entry. Safe to call if the logger is not initialised
// (no-op), so code paths never have to check.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// context.go defines the Context interface for extension access to
// nanobot internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions - they
// can access what they need without reaching into arbitrary internals.
//
// Design: Context uses an interface to enable testing with mock
// implementations. Extensions receive Context when contributing tools,
// not at construction, to support the two-phase initialisation pattern
// where extensions register before configuration is loaded.

package extension

import (
	"github.com/themavik/nanobot/internal/config"
	"github.com/themavik/nanobot/internal/tool"
)

// Context provides extensions controlled access to nanobot internals.
type Context interface {
	// Registry returns the shared tool registry. Tools registered here
	// are callable from the CLI and exposed over MCP.
	Registry() *tool.Registry

	// Root returns the workspace root that confines file operations.
	Root() string

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	reg  *tool.Registry
	root string
	cfg  *config.Config
}

// NewContext creates a new extension context.
func NewContext(reg *tool.Registry, root string, cfg *config.Config) Context {
	return &extContext{reg: reg, root: root, cfg: cfg}
}

func (c *extContext) Registry() *tool.Registry { return c.reg }
func (c *extContext) Root() string             { return c.root }
func (c *extContext) Config() *config.Config   { return c.cfg }

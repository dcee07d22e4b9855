/*
Copyright © 2026 themavik
*/

// init_extensions.go handles extension initialisation and command
// registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised
// until first command execution. This two-phase pattern allows
// extensions to declare commands before configuration is loaded. The
// tool registry is created once and shared across all extensions via
// the Context.

package cmd

import (
	"sync"

	"github.com/themavik/nanobot/extension"
	"github.com/themavik/nanobot/internal/config"
	"github.com/themavik/nanobot/internal/log"
	"github.com/themavik/nanobot/internal/tool"
)

// Shared extension state, created during initialisation.
var (
	extContext extension.Context
	extConfig  *config.Config
	registry   = tool.NewRegistry()
	initOnce   sync.Once
	initErr    error
)

// Tools returns the shared tool registry. Populated by initExtensions;
// empty until a command runs.
func Tools() *tool.Registry {
	return registry
}

// loadedConfig returns the config loaded during initialisation, or nil
// if extensions have not been initialised yet.
func loadedConfig() *config.Config {
	return extConfig
}

// initExtensions loads configuration and injects the shared context
// into extensions, collecting the tools they contribute.
//
// Why sync.Once: The registry panics on duplicate tool names, so tool
// collection must happen exactly once per process even if multiple
// commands somehow trigger it.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extConfig = cfg

		// Workspace identity for audit logging
		log.SetWorkspace(Root())

		extContext = extension.NewContext(registry, Root(), cfg)

		// Collect tools from every providing extension. This is
		// dependency injection - extensions receive the shared context
		// rather than creating their own, enabling one registry across
		// CLI and MCP surfaces.
		for _, ext := range extension.All() {
			if provider, ok := ext.(extension.ToolProvider); ok {
				for _, t := range provider.Tools(extContext) {
					registry.Register(t)
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}

// Package all imports all core nanobot extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/themavik/nanobot/extension/core"
	_ "github.com/themavik/nanobot/extension/file"
	_ "github.com/themavik/nanobot/extension/skill"
)

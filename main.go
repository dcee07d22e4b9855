/*
Copyright © 2026 themavik
*/
package main

import (
	"github.com/themavik/nanobot/cmd"

	// Import extensions - each registers itself via init()
	_ "github.com/themavik/nanobot/extension/all"
)

func main() {
	cmd.Execute()
}

// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the
// kebab-case CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagLocal  = "local"  // Use local scope (workspace config)
	FlagLong   = "long"   // Long format output
	FlagNumber = "number" // Number output lines
	FlagRaw    = "raw"    // Raw output without formatting

	// String flags

	FlagFile = "file" // Read content from a filesystem file
	FlagNew  = "new"  // New text for replacement
	FlagOld  = "old"  // Old text to find
)

// Package diffview renders the localized diff shown when an edit's
// old_text cannot be found in a file. It compares a window of the file
// around the closest matching region against the text the caller
// supplied, so the caller can see exactly where their input diverges.
package diffview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/themavik/nanobot/internal/match"
)

const (
	// MaxLines caps the rendered diff, header included. Diagnostics are
	// truncated, never summarised, so fixtures stay stable on large files.
	MaxLines = 30

	// MaxContext is the number of file lines shown before and after the
	// matched region.
	MaxContext = 5
)

// Labels for the two sides of the diff. The file side comes first so the
// output reads like a patch that would turn the file into the input.
const (
	FromLabel = "file (closest region)"
	ToLabel   = "old_text (your input)"
)

// Window returns the half-open line range [start, end) covering span in a
// file of n lines, padded by MaxContext lines on each side and clipped to
// the file boundaries.
func Window(n int, span match.Span) (start, end int) {
	start = span.RefStart - MaxContext
	if start < 0 {
		start = 0
	}
	end = span.RefStart + span.Length + MaxContext
	if end > n {
		end = n
	}
	return start, end
}

// Render returns a unified-diff-style comparison between region (lines
// taken from the file) and oldLines (the caller's old_text), labeled so a
// human can tell which side is which. Output is truncated to MaxLines
// lines in total.
func Render(region, oldLines []string) string {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(strings.Join(region, ""), strings.Join(oldLines, ""), false)
	d = dmp.DiffCleanupSemantic(d)

	var b strings.Builder
	b.WriteString("--- " + FromLabel + "\n")
	b.WriteString("+++ " + ToLabel + "\n")
	for _, diff := range d {
		// Trim trailing newline to avoid an artefact empty line from Split
		text := strings.TrimSuffix(diff.Text, "\n")
		if text == "" {
			continue
		}
		prefix := "  "
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, l := range strings.Split(text, "\n") {
			b.WriteString(prefix + l + "\n")
		}
	}

	return truncate(b.String(), MaxLines)
}

// truncate caps s at max lines. The cap is deterministic: exactly the
// first max lines survive, nothing is elided or replaced with ellipses.
func truncate(s string, max int) string {
	lines := strings.SplitAfter(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) <= max {
		return strings.TrimSuffix(s, "\n")
	}
	return strings.TrimSuffix(strings.Join(lines[:max], ""), "\n")
}

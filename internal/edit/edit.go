// Package edit implements exact-match text replacement with a
// fuzzy-match diagnostic fallback.
//
// An edit succeeds only when old_text occurs exactly once in the content
// as a raw substring. Ambiguity (two or more occurrences) refuses the
// edit with a count; absence produces a diagnostic report locating the
// closest matching region of the file, a capped diff against the
// caller's input, and heuristic hints about whitespace and line-ending
// mismatches.
//
// The two matching notions are deliberately distinct: the replace
// decision works on raw substring containment (a match spanning part of
// a line, or several lines, both count), while the diagnostic fallback
// works on line-tokenised sequences. Unifying them would misalign
// diagnostic line numbers with replacement semantics.
package edit

import (
	"fmt"
	"strings"

	"github.com/themavik/nanobot/internal/diffview"
	"github.com/themavik/nanobot/internal/match"
)

// NoMatchError reports that old_text does not occur in the content. The
// Diagnostic field carries the human-readable report; the line counts
// give the caller a quick sanity check.
type NoMatchError struct {
	OldLines   int    // line count of the requested old_text
	FileLines  int    // line count of the file content
	Diagnostic string // locate header, capped diff, hints
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("old_text not found: old_text has %d lines; file has %d lines.\n%s",
		e.OldLines, e.FileLines, e.Diagnostic)
}

// AmbiguousError reports that old_text occurs more than once. No
// replacement is performed: an ambiguous match must never cause an
// arbitrary first-occurrence edit.
type AmbiguousError struct {
	Count int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("old_text appears %d times; provide more surrounding context to make the match unique", e.Count)
}

// Apply replaces the single occurrence of oldText in content with
// newText and returns the new content.
//
// Zero occurrences return a *NoMatchError carrying a diagnostic report;
// two or more return a *AmbiguousError with the occurrence count. In
// both failure cases the returned content is empty and the input is
// untouched.
func Apply(content, oldText, newText string) (string, error) {
	if !strings.Contains(content, oldText) {
		return "", &NoMatchError{
			OldLines:   lineCount(oldText),
			FileLines:  lineCount(content),
			Diagnostic: Diagnose(content, oldText),
		}
	}

	if count := strings.Count(content, oldText); count > 1 {
		return "", &AmbiguousError{Count: count}
	}

	return strings.Replace(content, oldText, newText, 1), nil
}

// Diagnose builds the no-match report for oldText against content: where
// the closest line-level match sits, how the surrounding region differs
// from the input, and any whitespace or line-ending hints.
func Diagnose(content, oldText string) string {
	refLines := match.Lines(content)
	oldLines := match.Lines(oldText)

	if len(refLines) == 0 || len(oldLines) == 0 {
		return headPreview(refLines)
	}

	span := match.LongestCommonBlock(refLines, oldLines)
	if span.Length == 0 {
		// No line in common - a diff would be pure noise
		return headPreview(refLines)
	}

	start, end := diffview.Window(len(refLines), span)
	diff := diffview.Render(refLines[start:end], oldLines)

	parts := []string{fmt.Sprintf("Closest match near line %d:", span.RefStart+1)}
	if diff != "" {
		parts = append(parts, diff)
	}
	if hints := Hints(content, oldText, span, refLines, oldLines); len(hints) > 0 {
		parts = append(parts, "Hints: "+strings.Join(hints, "; "))
	}
	return strings.Join(parts, "\n")
}

// Hints returns advisory notes about near-miss causes, in a fixed order:
// first trailing-whitespace differences, then line-ending mismatches.
// An empty slice means no heuristic triggered.
func Hints(content, oldText string, span match.Span, refLines, oldLines []string) []string {
	var hints []string

	// First line (scanning from the match start) that differs only in
	// trailing whitespace. One hint is enough to make the problem obvious.
	for i, old := range oldLines {
		ri := span.RefStart + i
		if ri >= len(refLines) {
			break
		}
		ref := refLines[ri]
		if ref != old && trimTrailing(ref) == trimTrailing(old) {
			hints = append(hints, fmt.Sprintf("Line %d: trailing whitespace differs", ri+1))
			break
		}
	}

	fileCRLF := strings.Contains(content, "\r\n")
	oldCRLF := strings.Contains(oldText, "\r\n")
	switch {
	case fileCRLF && !oldCRLF:
		hints = append(hints, "File uses CRLF line endings but old_text uses LF")
	case !fileCRLF && oldCRLF:
		hints = append(hints, "File uses LF line endings but old_text uses CRLF")
	}

	return hints
}

// headPreview shows the first lines of the file, each prefixed with its
// 1-based number, for the case where a diff has nothing to anchor on.
func headPreview(refLines []string) string {
	n := len(refLines)
	if n > diffview.MaxContext {
		n = diffview.MaxContext
	}

	var b strings.Builder
	b.WriteString("No matching lines found. File starts with:\n")
	for i := range n {
		fmt.Fprintf(&b, "  %d: %s", i+1, refLines[i])
	}
	return b.String()
}

// lineCount matches the semantics of splitting on line boundaries:
// "a\nb\n" has two lines, "a\nb" also has two, "" has none.
func lineCount(s string) int {
	return len(match.Lines(s))
}

func trimTrailing(s string) string {
	return strings.TrimRight(s, " \t\r\n\v\f")
}

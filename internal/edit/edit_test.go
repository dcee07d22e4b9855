package edit

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/themavik/nanobot/internal/match"
)

func TestApplyUniqueMatch(t *testing.T) {
	tests := []struct {
		name    string
		content string
		old     string
		new     string
		want    string
	}{
		{
			name:    "whole line",
			content: "line1\nline2\nline3\n",
			old:     "line2\n",
			new:     "X\n",
			want:    "line1\nX\nline3\n",
		},
		{
			name:    "partial line",
			content: "hello world\n",
			old:     "world",
			new:     "there",
			want:    "hello there\n",
		},
		{
			name:    "multi-line block",
			content: "a\nb\nc\nd\n",
			old:     "b\nc\n",
			new:     "z\n",
			want:    "a\nz\nd\n",
		},
		{
			name:    "spanning a line boundary",
			content: "foo\nbar\n",
			old:     "o\nb",
			new:     "o\nB",
			want:    "foo\nBar\n",
		},
		{
			name:    "deletion",
			content: "keep\ndrop\n",
			old:     "drop\n",
			new:     "",
			want:    "keep\n",
		},
		{
			name:    "no trailing newline",
			content: "alpha beta",
			old:     "beta",
			new:     "gamma",
			want:    "alpha gamma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.content, tt.old, tt.new)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
			if delta := len(got) - len(tt.content); delta != len(tt.new)-len(tt.old) {
				t.Errorf("length delta = %d, want %d", delta, len(tt.new)-len(tt.old))
			}
		})
	}
}

func TestApplyAmbiguous(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		old       string
		wantCount int
	}{
		{
			name:      "repeated line",
			content:   "a\na\n",
			old:       "a\n",
			wantCount: 2,
		},
		{
			name:      "repeated fragment within lines",
			content:   "foo bar foo baz foo\n",
			old:       "foo",
			wantCount: 3,
		},
		{
			name:      "overlapping multi-line",
			content:   "x\ny\nx\ny\n",
			old:       "x\ny\n",
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.content, tt.old, "replacement")
			var ambErr *AmbiguousError
			if !errors.As(err, &ambErr) {
				t.Fatalf("Apply() error = %v, want *AmbiguousError", err)
			}
			if ambErr.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", ambErr.Count, tt.wantCount)
			}
			if got != "" {
				t.Errorf("ambiguous match returned content %q, want none", got)
			}
		})
	}
}

// A partial-line old_text appearing once as a substring edits cleanly
// even when its containing line repeats: the substring count is
// authoritative, line equality is diagnostic only.
func TestApplyPartialLineWithRepeatedContainingLine(t *testing.T) {
	content := "value\nvalue\n"
	got, err := Apply(content, "value\nval", "value\nVAL")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got != "value\nVALue\n" {
		t.Errorf("Apply() = %q", got)
	}
}

func TestApplyNoMatch(t *testing.T) {
	content := "foo\n"
	_, err := Apply(content, "bar\n", "baz\n")

	var nmErr *NoMatchError
	if !errors.As(err, &nmErr) {
		t.Fatalf("Apply() error = %v, want *NoMatchError", err)
	}
	if nmErr.OldLines != 1 || nmErr.FileLines != 1 {
		t.Errorf("line counts = (%d, %d), want (1, 1)", nmErr.OldLines, nmErr.FileLines)
	}
	if !strings.Contains(nmErr.Diagnostic, "No matching lines found") {
		t.Errorf("diagnostic missing fallback header: %q", nmErr.Diagnostic)
	}
	if !strings.Contains(nmErr.Diagnostic, "1: foo\n") {
		t.Errorf("diagnostic missing numbered file preview: %q", nmErr.Diagnostic)
	}
}

func TestDiagnoseClosestMatch(t *testing.T) {
	content := "alpha\nbeta\ngamma\ndelta\n"
	// Shares "beta" and "gamma" with the file but diverges after
	old := "beta\ngamma\nepsilon\n"

	got := Diagnose(content, old)
	if !strings.HasPrefix(got, "Closest match near line 2:") {
		t.Errorf("diagnostic header = %q, want closest match near line 2", got)
	}
	if !strings.Contains(got, "--- file (closest region)") {
		t.Errorf("diagnostic missing diff header: %q", got)
	}

	// Reported line number must be within the file
	n := matchLine(t, got)
	if lines := len(match.Lines(content)); n < 1 || n > lines {
		t.Errorf("reported line %d outside [1, %d]", n, lines)
	}
}

// matchLine extracts N from a "Closest match near line N:" header.
func matchLine(t *testing.T, diagnostic string) int {
	t.Helper()
	const prefix = "Closest match near line "
	rest, ok := strings.CutPrefix(diagnostic, prefix)
	if !ok {
		t.Fatalf("diagnostic has no locate header: %q", diagnostic)
	}
	num, _, ok := strings.Cut(rest, ":")
	if !ok {
		t.Fatalf("locate header not terminated: %q", diagnostic)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		t.Fatalf("locate header line number %q: %v", num, err)
	}
	return n
}

func TestDiagnoseEmptyOldText(t *testing.T) {
	got := Diagnose("a\nb\n", "")
	if !strings.Contains(got, "No matching lines found") {
		t.Errorf("empty old_text should fall back to file preview, got %q", got)
	}
}

func TestDiagnoseEmptyFile(t *testing.T) {
	got := Diagnose("", "a\n")
	if !strings.HasPrefix(got, "No matching lines found.") {
		t.Errorf("empty file should produce empty preview, got %q", got)
	}
	if strings.Contains(got, "1:") {
		t.Errorf("empty file preview should list no lines, got %q", got)
	}
}

func TestDiagnosePreviewCapped(t *testing.T) {
	content := "l1\nl2\nl3\nl4\nl5\nl6\nl7\n"
	got := Diagnose(content, "nothing shared\n")

	if !strings.Contains(got, "5: l5\n") {
		t.Errorf("preview missing 5th line: %q", got)
	}
	if strings.Contains(got, "6: l6") {
		t.Errorf("preview exceeded context cap: %q", got)
	}
}

func TestHintsTrailingWhitespace(t *testing.T) {
	content := "func main() {\n\tdoWork()  \n}\n"
	old := "func main() {\n\tdoWork()\n}\n"

	refLines := match.Lines(content)
	oldLines := match.Lines(old)
	span := match.LongestCommonBlock(refLines, oldLines)

	hints := Hints(content, old, span, refLines, oldLines)
	if len(hints) != 1 {
		t.Fatalf("Hints() = %v, want exactly one", hints)
	}
	if hints[0] != "Line 2: trailing whitespace differs" {
		t.Errorf("hint = %q", hints[0])
	}
}

func TestHintsTrailingWhitespaceFirstOnly(t *testing.T) {
	content := "shared\na \nb \n"
	old := "shared\na\nb\n"

	refLines := match.Lines(content)
	oldLines := match.Lines(old)
	span := match.LongestCommonBlock(refLines, oldLines)

	hints := Hints(content, old, span, refLines, oldLines)
	var wsHints int
	for _, h := range hints {
		if strings.Contains(h, "trailing whitespace") {
			wsHints++
		}
	}
	if wsHints != 1 {
		t.Errorf("got %d whitespace hints, want first-match-only", wsHints)
	}
}

func TestHintsLineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		old     string
		want    string
	}{
		{
			name:    "file CRLF input LF",
			content: "value\r\nother\r\n",
			old:     "value\nother\n",
			want:    "File uses CRLF line endings but old_text uses LF",
		},
		{
			name:    "file LF input CRLF",
			content: "value\nother\n",
			old:     "value\r\nother\r\n",
			want:    "File uses LF line endings but old_text uses CRLF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refLines := match.Lines(tt.content)
			oldLines := match.Lines(tt.old)
			span := match.LongestCommonBlock(refLines, oldLines)

			hints := Hints(tt.content, tt.old, span, refLines, oldLines)
			var found, reverse bool
			for _, h := range hints {
				if h == tt.want {
					found = true
				}
				if strings.Contains(h, "line endings") && h != tt.want {
					reverse = true
				}
			}
			if !found {
				t.Errorf("Hints() = %v, want %q", hints, tt.want)
			}
			if reverse {
				t.Errorf("Hints() = %v, contains the reverse direction too", hints)
			}
		})
	}
}

func TestHintsNoneTriggered(t *testing.T) {
	content := "one\ntwo\n"
	old := "one\nthree\n"

	refLines := match.Lines(content)
	oldLines := match.Lines(old)
	span := match.LongestCommonBlock(refLines, oldLines)

	if hints := Hints(content, old, span, refLines, oldLines); len(hints) != 0 {
		t.Errorf("Hints() = %v, want none", hints)
	}
}

func TestNoMatchDiagnosticIncludesCRLFHint(t *testing.T) {
	// The shared first line anchors the closest-match region; the CRLF
	// lines after it trigger the line-ending hint.
	content := "header\nvalue\r\nline two\r\n"
	_, err := Apply(content, "header\nvalue\nline two\n", "x\n")

	var nmErr *NoMatchError
	if !errors.As(err, &nmErr) {
		t.Fatalf("Apply() error = %v, want *NoMatchError", err)
	}
	if !strings.Contains(nmErr.Diagnostic, "CRLF") {
		t.Errorf("diagnostic missing CRLF hint: %q", nmErr.Diagnostic)
	}
}

package tool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func args(kv ...string) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}

func TestReadFileTool(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(p, []byte("file body\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rd := NewReadFile(dir)
	if got := rd.Execute(context.Background(), args("path", p)); got != "file body\n" {
		t.Errorf("read = %q", got)
	}

	missing := filepath.Join(dir, "missing.txt")
	got := rd.Execute(context.Background(), args("path", missing))
	if got != fmt.Sprintf("Error: File not found: %s", missing) {
		t.Errorf("missing file = %q", got)
	}

	if got := rd.Execute(context.Background(), args("path", dir)); !strings.HasPrefix(got, "Error: Not a file:") {
		t.Errorf("dir read = %q", got)
	}
}

func TestReadFileToolSandbox(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(os.TempDir(), "outside.txt")

	got := NewReadFile(dir).Execute(context.Background(), args("path", outside))
	if !strings.HasPrefix(got, "Error: permission denied") {
		t.Errorf("escape attempt = %q, want permission denied", got)
	}
}

func TestWriteFileTool(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "sub", "new.txt")

	got := NewWriteFile(dir).Execute(context.Background(), args("path", p, "content", "hello"))
	want := fmt.Sprintf("Successfully wrote 5 bytes to %s", p)
	if got != want {
		t.Errorf("write = %q, want %q", got, want)
	}

	data, err := os.ReadFile(p)
	if err != nil || string(data) != "hello" {
		t.Errorf("on disk = %q, %v", data, err)
	}
}

func TestEditFileTool(t *testing.T) {
	dir := t.TempDir()
	ed := NewEditFile(dir)

	write := func(content string) string {
		p := filepath.Join(dir, "target.txt")
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	t.Run("unique match edits", func(t *testing.T) {
		p := write("line1\nline2\nline3\n")
		got := ed.Execute(context.Background(), args("path", p, "old_text", "line2\n", "new_text", "X\n"))
		if got != fmt.Sprintf("Successfully edited %s", p) {
			t.Errorf("edit = %q", got)
		}
		data, _ := os.ReadFile(p)
		if string(data) != "line1\nX\nline3\n" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("ambiguous match refuses", func(t *testing.T) {
		p := write("a\na\n")
		got := ed.Execute(context.Background(), args("path", p, "old_text", "a\n", "new_text", "b\n"))
		if !strings.Contains(got, "appears 2 times") {
			t.Errorf("ambiguous = %q", got)
		}
		data, _ := os.ReadFile(p)
		if string(data) != "a\na\n" {
			t.Errorf("content changed on ambiguity: %q", data)
		}
	})

	t.Run("no match reports diagnostic", func(t *testing.T) {
		p := write("foo\n")
		got := ed.Execute(context.Background(), args("path", p, "old_text", "bar\n", "new_text", "baz\n"))
		if !strings.Contains(got, "old_text not found in") {
			t.Errorf("no match = %q", got)
		}
		if !strings.Contains(got, "old_text has 1 lines; file has 1 lines.") {
			t.Errorf("missing line counts: %q", got)
		}
		if !strings.Contains(got, "No matching lines found") {
			t.Errorf("missing preview fallback: %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		p := filepath.Join(dir, "gone.txt")
		got := ed.Execute(context.Background(), args("path", p, "old_text", "x", "new_text", "y"))
		if got != fmt.Sprintf("Error: File not found: %s", p) {
			t.Errorf("missing = %q", got)
		}
	})
}

func TestListDirTool(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "a"), 0o755); err != nil {
		t.Fatal(err)
	}

	ls := NewListDir(dir)
	got := ls.Execute(context.Background(), args("path", dir))
	if got != "📁 a\n📄 b.txt" {
		t.Errorf("list = %q", got)
	}

	empty := filepath.Join(dir, "a")
	if got := ls.Execute(context.Background(), args("path", empty)); got != fmt.Sprintf("Directory %s is empty", empty) {
		t.Errorf("empty = %q", got)
	}

	missing := filepath.Join(dir, "nope")
	if got := ls.Execute(context.Background(), args("path", missing)); got != fmt.Sprintf("Error: Directory not found: %s", missing) {
		t.Errorf("missing = %q", got)
	}
}

func TestFileToolSchemas(t *testing.T) {
	for _, tl := range []Tool{NewReadFile(""), NewWriteFile(""), NewEditFile(""), NewListDir("")} {
		s := tl.Parameters()
		if s.Type != "object" {
			t.Errorf("%s schema type = %q", tl.Name(), s.Type)
		}
		if len(s.Required) == 0 {
			t.Errorf("%s has no required params", tl.Name())
		}
		for _, req := range s.Required {
			if _, ok := s.Properties[req]; !ok {
				t.Errorf("%s requires undeclared param %q", tl.Name(), req)
			}
		}
	}
}

func TestRegisterFileTools(t *testing.T) {
	r := NewRegistry()
	RegisterFileTools(r, "")

	want := []string{"read_file", "write_file", "edit_file", "list_dir"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

package cmd

import "testing"

const editTestDoc = `# Deployment Guide

Deploys are triggered from the main branch.
Rollbacks use the previous release tag.

## Checklist

- run the smoke tests
- verify the dashboards
`

func TestEdit(t *testing.T) {
	t.Run("positional replace", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("guide.md", editTestDoc)

		out := env.run("edit", "guide.md", "previous release tag", "last known-good tag")
		env.contains(out, "Edited guide.md")
		env.contains(env.read("guide.md"), "last known-good tag")
	})

	t.Run("flag replace", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("guide.md", editTestDoc)

		env.run("edit", "guide.md", "--old", "smoke tests", "--new", "full suite")
		env.contains(env.read("guide.md"), "full suite")
	})

	t.Run("multi-line replace", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("guide.md", editTestDoc)

		env.run("edit", "guide.md",
			"- run the smoke tests\n- verify the dashboards\n",
			"- page the on-call\n")
		env.contains(env.read("guide.md"), "page the on-call")
	})

	t.Run("missing old text", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("guide.md", editTestDoc)

		out, err := env.runErr("edit", "guide.md")
		if err == nil {
			t.Fatal("Edit(no old text) = nil, want error")
		}
		env.contains(out, "old text is required")
	})
}

func TestEdit_NoMatch(t *testing.T) {
	t.Run("diagnostic names closest line", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("guide.md", editTestDoc)

		out, err := env.runErr("edit", "guide.md",
			"Deploys are triggered from the main branch.\nRollbacks use the latest release tag.\n",
			"replacement")
		if err == nil {
			t.Fatal("Edit(no match) = nil, want error")
		}
		env.contains(out, "old_text not found")
		env.contains(out, "Closest match near line")
		env.contains(out, "file (closest region)")
	})

	t.Run("file untouched on failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("guide.md", editTestDoc)

		_, _ = env.runErr("edit", "guide.md", "no such text", "replacement")
		env.equals(env.read("guide.md"), editTestDoc)
	})
}

func TestEdit_Ambiguous(t *testing.T) {
	env := newTestEnv(t)
	env.write("dup.txt", "repeat\nother\nrepeat\n")

	out, err := env.runErr("edit", "dup.txt", "repeat\n", "once\n")
	if err == nil {
		t.Fatal("Edit(ambiguous) = nil, want error")
	}
	env.contains(out, "appears 2 times")

	// no mutation on ambiguity
	env.equals(env.read("dup.txt"), "repeat\nother\nrepeat")
}

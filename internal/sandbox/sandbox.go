// Package sandbox resolves and validates filesystem paths for tool
// invocations.
//
// Every path a tool receives passes through Resolve before any I/O.
// Resolution expands a leading "~", absolutises relative paths, cleans
// "." and ".." segments and follows symlinks, so the containment check
// always runs against the real target rather than whatever the caller
// typed.
//
// Security: when a root is configured, any resolved path outside it is
// rejected with ErrDenied. The check compares whole path components, so
// a root of /work does not admit /work2.
package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrDenied indicates the path escapes the allowed root directory.
var ErrDenied = errors.New("permission denied")

// Resolve expands and absolutises path, then verifies it stays inside
// root. An empty root disables the containment check. The returned path
// is absolute and cleaned.
func Resolve(path, root string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrDenied)
	}

	expanded, err := expandUser(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}
	abs, err = realPath(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}

	if root == "" {
		return abs, nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", root, err)
	}
	absRoot, err = realPath(absRoot)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", root, err)
	}

	if !contains(absRoot, abs) {
		return "", fmt.Errorf("%w: path %s is outside allowed directory %s", ErrDenied, path, absRoot)
	}

	return abs, nil
}

// realPath follows symlinks in p. When p does not exist yet, the
// deepest existing ancestor is resolved instead and the remaining
// components reattached, so a symlinked parent cannot smuggle a
// new file outside the root.
func realPath(p string) (string, error) {
	resolved, err := filepath.EvalSymlinks(p)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	parent := filepath.Dir(p)
	if parent == p {
		return p, nil
	}
	resolved, err = realPath(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolved, filepath.Base(p)), nil
}

// contains reports whether p equals root or sits below it. Comparison is
// per path component: /work never contains /work2.
func contains(root, p string) bool {
	root = filepath.Clean(root)
	p = filepath.Clean(p)
	if p == root {
		return true
	}
	return strings.HasPrefix(p, root+string(filepath.Separator))
}

// expandUser replaces a leading "~" or "~/" with the current user's home
// directory. "~other" is left untouched: resolving other users' homes is
// not worth the platform-specific lookup.
func expandUser(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~"+string(filepath.Separator)) && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}

// Package fsio provides whole-file read/write and directory listing for
// the file tools.
//
// All operations are synchronous, single-shot transformations: a read
// loads the entire file into memory, a write replaces the entire file.
// No locking is performed around read-modify-write sequences; concurrent
// writers to the same file race at the filesystem level (last writer
// wins), which is acceptable because the agent loop serialises tool
// calls within a session.
package fsio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

var (
	// ErrNotFound indicates the path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotAFile indicates the path exists but is not a regular file.
	ErrNotAFile = errors.New("not a file")
	// ErrNotADirectory indicates the path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// ReadFile returns the entire content of the file at path as text.
func ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile replaces the file at path with content, creating parent
// directories as needed. An existing file keeps its permission bits; new
// files are created 0o644.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	return os.WriteFile(path, []byte(content), perm)
}

// Entry is a single directory listing entry.
type Entry struct {
	Name string `json:"name"`
	Dir  bool   `json:"dir"`
}

// ListDir returns the entries of the directory at path, sorted by name.
func ListDir(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, Entry{Name: e.Name(), Dir: e.IsDir()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

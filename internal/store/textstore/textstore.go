package textstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
)

// Plain-text storage: one item per line, no escaping, no header.
// The whole file is rewritten on every save; a crash mid-write can
// leave it truncated.

// DefaultFileName is used when no file is configured.
const DefaultFileName = "todo_list.txt"

// Store reads and writes a single list file.
type Store struct {
	path string
}

// New returns a store for name. Relative names resolve against the
// current working directory.
func New(name string) (*Store, error) {
	if name == "" {
		name = DefaultFileName
	}
	if filepath.IsAbs(name) {
		return &Store{path: name}, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getwd: %w", err)
	}
	return &Store{path: filepath.Join(wd, name)}, nil
}

// Path is the absolute location of the list file.
func (s *Store) Path() string { return s.path }

// Load returns the stored items. A missing file is an empty list.
func (s *Store) Load() ([]model.Item, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return model.FromTitles(Decode(string(b))), nil
}

// Save overwrites the file with items, creating it if needed.
func (s *Store) Save(items []model.Item) error {
	if err := os.WriteFile(s.path, []byte(Encode(model.Titles(items))), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Encode joins lines with '\n' and no trailing newline.
func Encode(lines []string) string {
	return strings.Join(lines, "\n")
}

// Decode splits on '\n', drops a '\r' before each line break and
// ignores one final empty line left by a trailing newline.
func Decode(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

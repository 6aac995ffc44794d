package types

import (
	"fmt"
	"os"
	"path/filepath"
)

// Entry is one matched filesystem path and its deletion mark.
// IsFile is resolved once when the entry is created and never re-probed.
type Entry struct {
	Path            string `json:"path"`
	IsFile          bool   `json:"is_file"`
	MarkedForDelete bool   `json:"marked_for_delete"`
}

// NewEntry probes path and returns a fresh entry marked for deletion.
// It fails when the path cannot be stat'ed (broken symlink, permission denied).
func NewEntry(path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Path:            path,
		IsFile:          !info.IsDir(),
		MarkedForDelete: true,
	}, nil
}

// ToggleDelete flips the deletion mark.
func (e *Entry) ToggleDelete() {
	e.MarkedForDelete = !e.MarkedForDelete
}

// Name returns the base name of the entry
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Kind returns "File" or "Dir".
func (e Entry) Kind() string {
	if e.IsFile {
		return "File"
	}
	return "Dir"
}

// String returns a human-readable representation
func (e Entry) String() string {
	mark := " "
	if e.MarkedForDelete {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %-4s %s", mark, e.Kind(), e.Path)
}

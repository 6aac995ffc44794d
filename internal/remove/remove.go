// Package remove holds the filesystem delete primitives used when a batch
// of marked entries is committed.
package remove

import (
	"fmt"
	"os"

	"eradicate/internal/log"
)

// Remover deletes single files and whole directory trees. Each call either
// fully succeeds or reports failure.
type Remover interface {
	RemoveFile(path string) error
	RemoveTree(path string) error
}

// FS removes paths from the local filesystem.
type FS struct{}

// RemoveFile deletes one non-directory path.
func (FS) RemoveFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	log.LogWithFields(log.F("path", path)).Debug("removed file")
	return nil
}

// RemoveTree deletes path and everything below it. Unlike os.RemoveAll a
// missing path is an error.
func (FS) RemoveTree(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return err
	}
	log.LogWithFields(log.F("path", path)).Debug("removed tree")
	return nil
}

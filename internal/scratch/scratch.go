// Package scratch provides a temporary directory that is owned by exactly one operation.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Dir is a temporary directory that holds intermediate files.
//
// Create with New and always release with Close, usually via defer.
type Dir struct {
	path   string
	closed bool
}

// New creates a fresh temporary directory under parent.
//
// An empty parent uses os.TempDir.
func New(parent string) (*Dir, error) {
	path, err := os.MkdirTemp(parent, "xtar-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch directory error: %w", err)
	}

	return &Dir{path: path}, nil
}

// Path returns the path of the directory.
func (d *Dir) Path() string {
	return d.path
}

// Name returns a new unique file path inside the directory.
//
// The file itself is not created.
func (d *Dir) Name() (string, error) {
	if d.closed {
		return "", fmt.Errorf(`scratch directory "%s" is already closed`, d.path)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate scratch name error: %w", err)
	}

	return filepath.Join(d.path, id.String()), nil
}

// Close removes the directory and everything in it.
//
// Subsequent calls are no-ops.
func (d *Dir) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	if err := os.RemoveAll(d.path); err != nil {
		return fmt.Errorf(`remove scratch directory "%s" error: %w`, d.path, err)
	}

	return nil
}

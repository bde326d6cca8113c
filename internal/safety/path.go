// Package safety guards extraction against entry names that would escape the output directory.
package safety

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsafePath is matched by every error returned from this package.
var ErrUnsafePath = errors.New("path is unsafe")

// CleanRelativePath validates and normalises a slash-separated relative entry name.
//
// Empty names, absolute names, and names with parent traversal are rejected.
func CleanRelativePath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", ErrUnsafePath)
	}

	if strings.HasPrefix(name, "/") || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf(`%w: absolute name "%s"`, ErrUnsafePath, name)
	}

	clean := filepath.Clean(filepath.FromSlash(name))
	switch {
	case clean == ".":
		return "", fmt.Errorf(`%w: name "%s" resolves to current directory`, ErrUnsafePath, name)
	case clean == "..", strings.HasPrefix(clean, ".."+string(filepath.Separator)):
		return "", fmt.Errorf(`%w: parent traversal "%s"`, ErrUnsafePath, name)
	}

	return clean, nil
}

// SafeJoinUnder joins the validated entry name under root and verifies that the result stays inside root.
func SafeJoinUnder(root, name string) (string, error) {
	clean, err := CleanRelativePath(name)
	if err != nil {
		return "", err
	}

	return EnsureUnderRoot(root, filepath.Join(root, clean))
}

// EnsureUnderRoot verifies that candidate resolves under root and returns its absolute path.
func EnsureUnderRoot(root, candidate string) (string, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf(`resolve root "%s" error: %w`, root, err)
	}

	candAbs, err := filepath.Abs(candidate)
	if err != nil {
		return "", fmt.Errorf(`resolve "%s" error: %w`, candidate, err)
	}

	rel, err := filepath.Rel(rootAbs, candAbs)
	if err != nil {
		return "", fmt.Errorf(`%w: compare "%s" error: %v`, ErrUnsafePath, candidate, err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf(`%w: "%s" escapes root`, ErrUnsafePath, candidate)
	}

	return candAbs, nil
}

package xtar

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches every file under the root at any depth.
const DefaultPattern = "/**/*"

// Enumerate returns the regular files under root that match the given pattern.
//
// The pattern is relative to root; a leading "/" is ignored so DefaultPattern matches everything. Alternatives can be
// given with braces such as "{docs/*.md,src/**/*.go}". Directories are skipped, while symlinks are followed.
//
// The sequence is lazy and can only be iterated once. An invalid pattern yields a single ErrPattern error, while a
// matched path that cannot be resolved yields ErrGlob and stops the enumeration.
func Enumerate(root, pattern string) iter.Seq2[string, error] {
	pattern = strings.TrimLeft(filepath.ToSlash(pattern), "/")

	return func(yield func(string, error) bool) {
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			yield("", &Error{Kind: ErrPattern, Path: pattern, Err: doublestar.ErrBadPattern})
			return
		}

		fi, err := os.Stat(root)
		switch {
		case err != nil:
			yield("", statError(root, err))
			return
		case !fi.IsDir():
			yield("", &Error{Kind: ErrInvalidArg, Path: root, Err: errors.New("not a directory")})
			return
		}

		stopped := errors.New("stopped")

		err = doublestar.GlobWalk(os.DirFS(root), pattern, func(match string, d fs.DirEntry) error {
			path := filepath.Join(root, filepath.FromSlash(match))

			fi, err := os.Stat(path)
			if err != nil {
				yield("", &Error{Kind: ErrGlob, Path: path, Err: err})
				return stopped
			}

			if !fi.Mode().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				return stopped
			}

			return nil
		}, doublestar.WithFailOnIOErrors())

		switch {
		case err == nil, errors.Is(err, stopped):
		case errors.Is(err, doublestar.ErrBadPattern):
			yield("", &Error{Kind: ErrPattern, Path: pattern, Err: err})
		default:
			yield("", &Error{Kind: ErrGlob, Path: root, Err: err})
		}
	}
}

// RelName returns the name of path relative to root, using "/" as the separator.
//
// Returns an ErrStripPrefix error if path is not under root.
func RelName(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", &Error{Kind: ErrStripPrefix, Path: path, Err: err}
	}

	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", &Error{Kind: ErrStripPrefix, Path: path}
	}

	return filepath.ToSlash(rel), nil
}

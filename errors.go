package xtar

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/nguyengg/xtar/codec"
)

var (
	// ErrInvalidArg is matched by errors about missing or malformed source, target, or entry paths.
	ErrInvalidArg = errors.New("arg is invalid")
	// ErrPathNotExists is matched by errors about source files or directories that do not exist.
	ErrPathNotExists = errors.New("path does not exist")
	// ErrIO is matched by errors from underlying read, write, or create operations.
	ErrIO = errors.New("io error")
	// ErrStripPrefix is matched by errors about enumerated paths that are not under the enumeration root.
	ErrStripPrefix = errors.New("strip prefix error")
	// ErrPattern is matched by errors about malformed match patterns.
	ErrPattern = errors.New("pattern is invalid")
	// ErrGlob is matched by errors about matched paths that cannot be resolved.
	ErrGlob = errors.New("glob error")

	// ErrInvalidCompression is matched by errors about unknown codec tags.
	ErrInvalidCompression = codec.ErrInvalidCompression
	// ErrCorrupt is matched by errors about malformed compressed payloads.
	ErrCorrupt = codec.ErrCorrupt
)

// Error carries the kind of failure and the offending path.
//
// Use errors.Is with one of the Err sentinel values to test for the kind, or with the underlying cause (for example
// fs.ErrNotExist or context.Canceled).
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf(`%v "%s"`, e.Kind, e.Path)
	}

	return fmt.Sprintf(`%v "%s": %v`, e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

func invalidArg(path string) error {
	return &Error{Kind: ErrInvalidArg, Path: path}
}

func ioError(path string, err error) error {
	return &Error{Kind: ErrIO, Path: path, Err: err}
}

// statError classifies the error from os.Stat or os.Open.
func statError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &Error{Kind: ErrPathNotExists, Path: path, Err: err}
	}

	return ioError(path, err)
}

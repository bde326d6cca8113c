package xtar

import (
	"archive/tar"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Metadata is the file metadata carried alongside each archive entry.
type Metadata struct {
	// ModTime is the modification time truncated to whole seconds.
	//
	// The zero value means the modification time is unknown and will not be applied.
	ModTime time.Time
	// Mode contains the permission bits.
	Mode fs.FileMode
}

// Capture reads the metadata of the file at the given path.
func Capture(path string) (m Metadata, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return m, statError(path, err)
	}

	return Metadata{ModTime: fi.ModTime().Truncate(time.Second), Mode: fi.Mode().Perm()}, nil
}

// FromHeader returns the metadata stored in the given tar header.
func FromHeader(hdr *tar.Header) Metadata {
	return Metadata{ModTime: hdr.ModTime.Truncate(time.Second), Mode: fs.FileMode(hdr.Mode).Perm()}
}

// header creates a tar header for a regular file entry with the given name and payload size.
func (m Metadata) header(name string, size int64) *tar.Header {
	return &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Size:     size,
		Mode:     int64(m.Mode.Perm()),
		ModTime:  m.ModTime,
		Format:   tar.FormatPAX,
	}
}

// ApplyOptions customises Apply.
type ApplyOptions struct {
	// Mode restores the permission bits in addition to the modification time.
	//
	// By default, only the modification time is restored.
	Mode bool
}

// Apply restores the metadata onto the file at the given path.
//
// Missing parent directories are created. A zero ModTime is skipped.
func Apply(path string, m Metadata, optFns ...func(*ApplyOptions)) error {
	opts := &ApplyOptions{}
	for _, fn := range optFns {
		fn(opts)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return ioError(filepath.Dir(path), err)
	}

	if opts.Mode && m.Mode != 0 {
		if err := os.Chmod(path, m.Mode.Perm()); err != nil {
			return ioError(path, err)
		}
	}

	if !m.ModTime.IsZero() {
		if err := os.Chtimes(path, time.Time{}, m.ModTime); err != nil {
			return ioError(path, err)
		}
	}

	return nil
}

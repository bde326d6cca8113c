package xtar

import (
	"archive/tar"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	mtime := time.Date(2021, 3, 4, 5, 6, 7, 890_000_000, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	m, err := Capture(path)
	require.NoError(t, err)
	assert.True(t, m.ModTime.Equal(mtime.Truncate(time.Second)), "got %s", m.ModTime)

	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0644), m.Mode)
	}

	_, err = Capture(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrPathNotExists)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	mtime := time.Date(2019, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, Apply(path, Metadata{ModTime: mtime, Mode: 0600}))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, fi.ModTime().Equal(mtime))
	if runtime.GOOS != "windows" {
		// mode is left alone unless asked for.
		assert.Equal(t, os.FileMode(0644), fi.Mode().Perm())

		require.NoError(t, Apply(path, Metadata{Mode: 0600}, func(o *ApplyOptions) {
			o.Mode = true
		}))
		fi, err = os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
	}

	// zero ModTime is skipped.
	require.NoError(t, Apply(path, Metadata{}))
	fi, err = os.Stat(path)
	require.NoError(t, err)
	assert.True(t, fi.ModTime().Equal(mtime))
}

func TestMetadata_header(t *testing.T) {
	mtime := time.Date(2019, 1, 2, 3, 4, 5, 0, time.UTC)
	m := Metadata{ModTime: mtime, Mode: 0640}

	hdr := m.header("a/b.txt", 42)
	assert.Equal(t, byte(tar.TypeReg), hdr.Typeflag)
	assert.Equal(t, "a/b.txt", hdr.Name)
	assert.Equal(t, int64(42), hdr.Size)
	assert.Equal(t, int64(0640), hdr.Mode)

	got := FromHeader(hdr)
	assert.True(t, got.ModTime.Equal(mtime))
	assert.Equal(t, m.Mode, got.Mode)
}

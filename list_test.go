package xtar

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	src := filepath.Join(t.TempDir(), "data.gz.tar")
	writeTar(t, src,
		testEntry{name: "z.txt", payload: []byte("not gzip at all"), mode: 0600},
		testEntry{name: "a/b.txt", payload: bytes.Repeat([]byte{1}, 2000)},
		testEntry{name: "m.txt", payload: nil, mode: 0755},
	)

	buf := &bytes.Buffer{}
	require.NoError(t, List(t.Context(), src, buf))

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC).Local().Format(time.DateTime)
	want := strings.Join([]string{
		"total 3",
		fmt.Sprintf("-rw-------      15 B  %s  z.txt", mtime),
		fmt.Sprintf("-rw-r--r--    2.0 kB  %s  a/b.txt", mtime),
		fmt.Sprintf("-rwxr-xr-x       0 B  %s  m.txt", mtime),
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestList_Errors(t *testing.T) {
	err := List(t.Context(), "", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInvalidArg)

	err = List(t.Context(), filepath.Join(t.TempDir(), "missing.gz.tar"), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrPathNotExists)

	src := filepath.Join(t.TempDir(), "garbage.gz.tar")
	require.NoError(t, os.WriteFile(src, bytes.Repeat([]byte("x"), 1024), 0644))
	err = List(t.Context(), src, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrIO)
}

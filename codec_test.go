package xtar

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyengg/xtar/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 200)
	require.NoError(t, os.WriteFile(src, data, 0644))

	mtime := time.Date(2022, 6, 7, 8, 9, 10, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	for _, alg := range codec.All {
		t.Run(alg.String(), func(t *testing.T) {
			dst := filepath.Join(dir, "out."+alg.Tag())
			progress := &bytes.Buffer{}

			n, err := Encode(t.Context(), alg, src, dst, 5, func(o *EncodeOptions) {
				o.ProgressBar = progress
			})
			require.NoError(t, err)
			assert.Equal(t, data, progress.Bytes())

			fi, err := os.Stat(dst)
			require.NoError(t, err)
			assert.Equal(t, fi.Size(), n)
			assert.True(t, fi.ModTime().Equal(mtime))

			// Encode refuses to overwrite.
			_, err = Encode(t.Context(), alg, src, dst, 5)
			assert.ErrorIs(t, err, ErrIO)

			f, err := os.Open(dst)
			require.NoError(t, err)
			defer f.Close()

			out := filepath.Join(dir, alg.Tag(), "nested", "out.txt")
			got, err := Decode(t.Context(), alg, f, out, Metadata{ModTime: mtime})
			require.NoError(t, err)
			assert.Equal(t, data, got)

			written, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, data, written)

			fi, err = os.Stat(out)
			require.NoError(t, err)
			assert.True(t, fi.ModTime().Equal(mtime))
		})
	}
}

func TestDecode_InMemory(t *testing.T) {
	buf := &bytes.Buffer{}
	enc, err := codec.Zstd.NewEncoder(buf, DefaultLevel)
	require.NoError(t, err)
	_, err = enc.Write([]byte("hello, world"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	got, err := Decode(t.Context(), codec.Zstd, buf, "", Metadata{})
	require.NoError(t, err)
	assert.Equal(t, "hello, world", string(got))
}

func TestEncode_MissingSource(t *testing.T) {
	dir := t.TempDir()

	_, err := Encode(t.Context(), codec.Gzip, filepath.Join(dir, "missing"), filepath.Join(dir, "out.gz"), 1)
	assert.ErrorIs(t, err, ErrPathNotExists)
	assert.NoFileExists(t, filepath.Join(dir, "out.gz"))
}

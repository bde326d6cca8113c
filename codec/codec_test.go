package codec

import (
	"bytes"
	"crypto/rand"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag  string
		want Algorithm
		name string
	}{
		{tag: "gz", want: Gzip, name: "gzip"},
		{tag: "zst", want: Zstd, name: "zstd"},
		{tag: "br", want: Brotli, name: "brotli"},
		{tag: "zip", want: Deflate, name: "deflate"},
		{tag: "sz", want: Snappy, name: "snappy"},
		{tag: "lz4", want: Lz4, name: "lz4"},
		{tag: "xz", want: Xz, name: "xz"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseTag(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.tag, got.Tag())
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestParseTag_Invalid(t *testing.T) {
	for _, tag := range []string{"", "unknown", "gzip", "GZ", "tar"} {
		t.Run(tag, func(t *testing.T) {
			_, err := ParseTag(tag)
			assert.ErrorIs(t, err, ErrInvalidCompression)

			var ice *InvalidCompressionError
			if assert.ErrorAs(t, err, &ice) {
				assert.Equal(t, tag, ice.Tag)
			}
		})
	}
}

func TestLeveled(t *testing.T) {
	for _, a := range All {
		assert.Equalf(t, a != Snappy && a != Lz4, a.Leveled(), "%s.Leveled()", a)
	}
}

func TestRoundTrip(t *testing.T) {
	random := make([]byte, 64*1024)
	_, err := io.ReadFull(rand.Reader, random)
	require.NoError(t, err)

	inputs := map[string][]byte{
		"empty":  {},
		"short":  []byte("Mr. Jock, TV quiz PhD, bags few lynx\n"),
		"text":   []byte(strings.Repeat("Mr. Jock, TV quiz PhD, bags few lynx\n", 4096)),
		"random": random,
	}

	for _, a := range All {
		for _, level := range []int{-100, 0, 3, 9, 100} {
			for name, input := range inputs {
				var buf bytes.Buffer

				enc, err := a.NewEncoder(&buf, level)
				require.NoErrorf(t, err, "%s.NewEncoder(%d)", a, level)
				_, err = enc.Write(input)
				require.NoError(t, err)
				require.NoError(t, enc.Close())

				dec, err := a.NewDecoder(&buf)
				require.NoErrorf(t, err, "%s.NewDecoder()", a)
				got, err := io.ReadAll(dec)
				require.NoErrorf(t, err, "%s level=%d input=%s", a, level, name)
				require.NoError(t, dec.Close())

				assert.Truef(t, bytes.Equal(input, got), "%s level=%d input=%s: round trip mismatch", a, level, name)
			}
		}
	}
}

func TestDecode_Truncated(t *testing.T) {
	input := []byte(strings.Repeat("Mr. Jock, TV quiz PhD, bags few lynx\n", 4096))

	for _, a := range All {
		t.Run(a.String(), func(t *testing.T) {
			var buf bytes.Buffer

			enc, err := a.NewEncoder(&buf, 3)
			require.NoError(t, err)
			_, err = enc.Write(input)
			require.NoError(t, err)
			require.NoError(t, enc.Close())

			truncated := buf.Bytes()[:buf.Len()/2]

			dec, err := a.NewDecoder(bytes.NewReader(truncated))
			if err == nil {
				_, err = io.ReadAll(dec)
			}

			assert.ErrorIs(t, err, ErrCorrupt)

			var de *DecodeError
			if assert.ErrorAs(t, err, &de) {
				assert.Equal(t, a, de.Algorithm)
			}
		})
	}
}

func TestLz4Decode_ShortBlock(t *testing.T) {
	_, err := lz4Decode([]byte{1, 2})
	assert.Error(t, err)

	// claims 1 GiB from a handful of bytes.
	_, err = lz4Decode([]byte{0, 0, 0, 0x40, 1, 2, 3})
	assert.Error(t, err)
}

func TestBlockEncoder_WriteAfterClose(t *testing.T) {
	var buf bytes.Buffer

	enc, err := Snappy.NewEncoder(&buf, 0)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	_, err = enc.Write([]byte("late"))
	assert.ErrorIs(t, err, errEncoderClosed)
	assert.NoError(t, enc.Close())
}

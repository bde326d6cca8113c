package internal

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewProgressLogger(log.New(buf, "", 0), "compressed", 2048, time.Hour)

	// first write always logs.
	_, err := w.Write(make([]byte, 1024))
	require.NoError(t, err)
	_, err = w.Write(make([]byte, 512))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, "compressed 1.0 KiB / 2.0 KiB so far\ncompressed 1.5 KiB / 2.0 KiB in total\n", buf.String())
}

func TestNewProgressLogger_UnknownSize(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewProgressLogger(log.New(buf, "", 0), "decompressed", -1, time.Hour)

	_, err := w.Write(make([]byte, 10))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, "decompressed 10 B so far\ndecompressed 10 B in total\n", buf.String())
}

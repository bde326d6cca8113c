package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func newGzipEncoder(dst io.Writer, level int) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(dst, min(max(level, gzip.HuffmanOnly), gzip.BestCompression))
}

func newGzipDecoder(src io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(src)
}

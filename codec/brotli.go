package codec

import (
	"io"

	"github.com/andybalholm/brotli"
)

func newBrotliEncoder(dst io.Writer, level int) (io.WriteCloser, error) {
	return brotli.NewWriterLevel(dst, min(max(level, brotli.BestSpeed), brotli.BestCompression)), nil
}

func newBrotliDecoder(src io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(src)), nil
}

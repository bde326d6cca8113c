package codec

import (
	"io"

	"github.com/klauspost/compress/flate"
)

// deflate is a raw DEFLATE stream without zlib or gzip framing. Archives name it with the "zip" tag.
func newDeflateEncoder(dst io.Writer, level int) (io.WriteCloser, error) {
	return flate.NewWriter(dst, min(max(level, flate.HuffmanOnly), flate.BestCompression))
}

func newDeflateDecoder(src io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(src), nil
}

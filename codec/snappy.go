package codec

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// snappy entries are a single raw Snappy block, not the framed stream format.
func newSnappyEncoder(dst io.Writer, _ int) (io.WriteCloser, error) {
	return &blockEncoder{
		dst: dst,
		encode: func(src []byte) ([]byte, error) {
			return s2.EncodeSnappy(nil, src), nil
		},
	}, nil
}

func newSnappyDecoder(src io.Reader) (io.ReadCloser, error) {
	return &blockDecoder{
		src: src,
		decode: func(src []byte) ([]byte, error) {
			return s2.Decode(nil, src)
		},
	}, nil
}

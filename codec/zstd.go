package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func newZstdEncoder(dst io.Writer, level int) (io.WriteCloser, error) {
	return zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
}

func newZstdDecoder(src io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}

	return &zstdDecoder{Decoder: dec}, nil
}

type zstdDecoder struct {
	*zstd.Decoder
}

// Close adapts zstd.Decoder.Close which doesn't return error.
func (d *zstdDecoder) Close() error {
	d.Decoder.Close()
	return nil
}

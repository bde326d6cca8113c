package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/pierrec/lz4/v4"
)

// lz4 entries are a single raw LZ4 block prefixed with its uncompressed size as a little-endian uint32.
const lz4SizeLen = 4

// lz4MaxRatio bounds the uncompressed size an LZ4 block of a given length can claim.
const lz4MaxRatio = 255

func newLz4Encoder(dst io.Writer, _ int) (io.WriteCloser, error) {
	return &blockEncoder{dst: dst, encode: lz4Encode}, nil
}

func newLz4Decoder(src io.Reader) (io.ReadCloser, error) {
	return &blockDecoder{src: src, decode: lz4Decode}, nil
}

func lz4Encode(src []byte) ([]byte, error) {
	if uint64(len(src)) > math.MaxUint32 {
		return nil, fmt.Errorf("lz4 block too large: %d bytes", len(src))
	}

	dst := make([]byte, lz4SizeLen+lz4.CompressBlockBound(len(src)))
	binary.LittleEndian.PutUint32(dst, uint32(len(src)))
	if len(src) == 0 {
		return dst[:lz4SizeLen], nil
	}

	n, err := lz4.CompressBlock(src, dst[lz4SizeLen:], nil)
	if err != nil {
		return nil, err
	}

	return dst[:lz4SizeLen+n], nil
}

func lz4Decode(src []byte) ([]byte, error) {
	if len(src) < lz4SizeLen {
		return nil, fmt.Errorf("lz4 block too short: %d bytes", len(src))
	}

	size := uint64(binary.LittleEndian.Uint32(src))
	src = src[lz4SizeLen:]
	if size == 0 {
		return []byte{}, nil
	}
	if size > uint64(len(src))*lz4MaxRatio {
		return nil, fmt.Errorf("lz4 block of %d bytes cannot expand to %d bytes", len(src), size)
	}

	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, err
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4 block size mismatch: expected %d bytes, got %d", size, n)
	}

	return dst, nil
}

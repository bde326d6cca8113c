package codec

import (
	"io"

	"github.com/ulikunitz/xz"
)

// xzDictCaps are the dictionary sizes of the xz presets 0 through 9.
var xzDictCaps = [...]int{
	256 << 10,
	1 << 20,
	2 << 20,
	4 << 20,
	4 << 20,
	8 << 20,
	8 << 20,
	16 << 20,
	32 << 20,
	64 << 20,
}

func newXzEncoder(dst io.Writer, level int) (io.WriteCloser, error) {
	return xz.WriterConfig{DictCap: xzDictCaps[min(max(level, 0), len(xzDictCaps)-1)]}.NewWriter(dst)
}

func newXzDecoder(src io.Reader) (io.ReadCloser, error) {
	r, err := xz.NewReader(src)
	if err != nil {
		return nil, err
	}

	return io.NopCloser(r), nil
}

package codec

import (
	"bytes"
	"errors"
	"io"
)

var errEncoderClosed = errors.New("write to closed encoder")

// blockEncoder buffers everything written to it and compresses the whole buffer on Close.
//
// It serves codecs whose libraries only operate on complete blocks rather than streams, so memory usage is
// proportional to the size of the input.
type blockEncoder struct {
	dst    io.Writer
	encode func(src []byte) ([]byte, error)
	buf    bytes.Buffer
	closed bool
}

func (e *blockEncoder) Write(p []byte) (int, error) {
	if e.closed {
		return 0, errEncoderClosed
	}

	return e.buf.Write(p)
}

func (e *blockEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	data, err := e.encode(e.buf.Bytes())
	if err != nil {
		return err
	}

	_, err = e.dst.Write(data)
	return err
}

// blockDecoder reads the whole source on the first Read and serves the decoded block afterwards.
type blockDecoder struct {
	src    io.Reader
	decode func(src []byte) ([]byte, error)
	r      *bytes.Reader
}

func (d *blockDecoder) Read(p []byte) (int, error) {
	if d.r == nil {
		data, err := io.ReadAll(d.src)
		if err != nil {
			return 0, err
		}

		if data, err = d.decode(data); err != nil {
			return 0, err
		}

		d.r = bytes.NewReader(data)
	}

	return d.r.Read(p)
}

func (d *blockDecoder) Close() error {
	return nil
}

package xtar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nguyengg/xtar/codec"
	"github.com/nguyengg/xtar/internal"
	"github.com/nguyengg/xtar/util"
)

// EncodeOptions customises Encode.
type EncodeOptions struct {
	// ProgressBar receives a copy of every source byte read.
	ProgressBar io.Writer
}

// Encode compresses src into a newly created dst using the given algorithm and level.
//
// The modification time of src is copied onto dst. Returns the number of compressed bytes written.
func Encode(ctx context.Context, alg codec.Algorithm, src, dst string, level int, optFns ...func(*EncodeOptions)) (int64, error) {
	opts := &EncodeOptions{}
	for _, fn := range optFns {
		fn(opts)
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, statError(src, err)
	}
	defer in.Close()

	m, err := Capture(src)
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return 0, ioError(dst, err)
	}

	sizer := &internal.Sizer{}
	enc, err := alg.NewEncoder(io.MultiWriter(out, sizer), level)
	if err != nil {
		_ = out.Close()
		return 0, ioError(dst, err)
	}

	var r io.Reader = in
	if opts.ProgressBar != nil {
		r = io.TeeReader(in, opts.ProgressBar)
	}

	if _, err = util.CopyBufferWithContext(ctx, enc, r, nil); err != nil {
		_ = util.ChainCloser(enc.Close, out.Close)()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}

		return 0, ioError(src, fmt.Errorf("compress %s error: %w", alg, err))
	}

	if err = util.ChainCloser(enc.Close, out.Close)(); err != nil {
		return 0, ioError(dst, fmt.Errorf("close %s encoder error: %w", alg, err))
	}

	if err = os.Chtimes(dst, m.ModTime, m.ModTime); err != nil {
		return 0, ioError(dst, err)
	}

	return sizer.Size, nil
}

// DecodeOptions customises Decode.
type DecodeOptions struct {
	// ApplyOptions is passed to Apply when the decoded bytes are persisted.
	ApplyOptions []func(*ApplyOptions)

	// ProgressBar receives a copy of every decoded byte.
	ProgressBar io.Writer
}

// Decode decompresses the payload read from r using the given algorithm.
//
// If dst is non-empty, the decoded bytes are also written to dst (parent directories are created as needed) and the
// metadata is applied. The decoded bytes are always returned.
func Decode(ctx context.Context, alg codec.Algorithm, r io.Reader, dst string, m Metadata, optFns ...func(*DecodeOptions)) ([]byte, error) {
	opts := &DecodeOptions{}
	for _, fn := range optFns {
		fn(opts)
	}

	dec, err := alg.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	buf := &bytes.Buffer{}
	var w io.Writer = buf
	if opts.ProgressBar != nil {
		w = io.MultiWriter(buf, opts.ProgressBar)
	}

	if _, err = util.CopyBufferWithContext(ctx, w, dec, nil); err != nil {
		return nil, err
	}

	if dst == "" {
		return buf.Bytes(), nil
	}

	if err = os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return nil, ioError(filepath.Dir(dst), err)
	}

	if err = os.WriteFile(dst, buf.Bytes(), 0666); err != nil {
		return nil, ioError(dst, err)
	}

	if err = Apply(dst, m, opts.ApplyOptions...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

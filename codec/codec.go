// Package codec provides the compression algorithms that can be applied to individual archive entries.
//
// Each Algorithm is identified in file names by a short tag such as "gz" or "zst" and carries both its encoder and
// decoder constructors, so callers resolve a tag once with ParseTag and never switch on strings again.
package codec

import (
	"fmt"
	"io"
)

// Algorithm identifies one of the supported compression algorithms.
//
// The zero value is not a valid algorithm.
type Algorithm int

const (
	_ Algorithm = iota
	Gzip
	Zstd
	Brotli
	Deflate
	Snappy
	Lz4
	Xz
)

// All lists every supported Algorithm.
var All = []Algorithm{Gzip, Zstd, Brotli, Deflate, Snappy, Lz4, Xz}

// variant is the encoder/decoder pair of an Algorithm.
type variant struct {
	tag, name string
	leveled   bool
	enc       func(dst io.Writer, level int) (io.WriteCloser, error)
	dec       func(src io.Reader) (io.ReadCloser, error)
}

var variants = map[Algorithm]variant{
	Gzip:    {tag: "gz", name: "gzip", leveled: true, enc: newGzipEncoder, dec: newGzipDecoder},
	Zstd:    {tag: "zst", name: "zstd", leveled: true, enc: newZstdEncoder, dec: newZstdDecoder},
	Brotli:  {tag: "br", name: "brotli", leveled: true, enc: newBrotliEncoder, dec: newBrotliDecoder},
	Deflate: {tag: "zip", name: "deflate", leveled: true, enc: newDeflateEncoder, dec: newDeflateDecoder},
	Snappy:  {tag: "sz", name: "snappy", enc: newSnappyEncoder, dec: newSnappyDecoder},
	Lz4:     {tag: "lz4", name: "lz4", enc: newLz4Encoder, dec: newLz4Decoder},
	Xz:      {tag: "xz", name: "xz", leveled: true, enc: newXzEncoder, dec: newXzDecoder},
}

// ParseTag returns the Algorithm identified by the given file name tag.
//
// Unknown tags return an *InvalidCompressionError that matches ErrInvalidCompression.
func ParseTag(tag string) (Algorithm, error) {
	for _, a := range All {
		if variants[a].tag == tag {
			return a, nil
		}
	}

	return 0, &InvalidCompressionError{Tag: tag}
}

// Tag returns the short name used in archive file names, such as "gz" for Gzip.
func (a Algorithm) Tag() string {
	return a.mustVariant().tag
}

// String returns the long name of the algorithm, such as "gzip".
func (a Algorithm) String() string {
	if v, ok := variants[a]; ok {
		return v.name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Leveled returns true if the algorithm makes use of the compression level passed to NewEncoder.
func (a Algorithm) Leveled() bool {
	return a.mustVariant().leveled
}

// NewEncoder creates an encoder that compresses everything written to it into dst.
//
// The encoder must be closed to flush its trailer. Algorithms that are not Leveled ignore the level argument; the
// others clamp it to the range their library supports.
func (a Algorithm) NewEncoder(dst io.Writer, level int) (io.WriteCloser, error) {
	v, ok := variants[a]
	if !ok {
		return nil, &InvalidCompressionError{Tag: a.String()}
	}

	w, err := v.enc(dst, level)
	if err != nil {
		return nil, fmt.Errorf("create %s encoder error: %w", v.name, err)
	}

	return w, nil
}

// NewDecoder creates a decoder that decompresses contents from src.
//
// Malformed input surfaces as a *DecodeError, either from NewDecoder itself or from Read.
func (a Algorithm) NewDecoder(src io.Reader) (io.ReadCloser, error) {
	v, ok := variants[a]
	if !ok {
		return nil, &InvalidCompressionError{Tag: a.String()}
	}

	r, err := v.dec(src)
	if err != nil {
		return nil, &DecodeError{Algorithm: a, Err: err}
	}

	return &decoder{ReadCloser: r, alg: a}, nil
}

func (a Algorithm) mustVariant() variant {
	v, ok := variants[a]
	if !ok {
		panic(fmt.Sprintf("unknown algorithm: %d", int(a)))
	}

	return v
}

// decoder labels read errors with the algorithm that produced them.
type decoder struct {
	io.ReadCloser
	alg Algorithm
}

func (d *decoder) Read(p []byte) (n int, err error) {
	if n, err = d.ReadCloser.Read(p); err != nil && err != io.EOF {
		err = &DecodeError{Algorithm: d.alg, Err: err}
	}

	return
}

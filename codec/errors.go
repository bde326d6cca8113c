package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCompression is matched by errors returned for unknown algorithm tags.
	ErrInvalidCompression = errors.New("compression is invalid")
	// ErrCorrupt is matched by errors returned for malformed compressed payloads.
	ErrCorrupt = errors.New("compressed data is corrupt")
)

// InvalidCompressionError is returned when a tag does not name a supported algorithm.
type InvalidCompressionError struct {
	Tag string
}

func (e *InvalidCompressionError) Error() string {
	return fmt.Sprintf(`compression is invalid "%s"`, e.Tag)
}

func (e *InvalidCompressionError) Is(target error) bool {
	return target == ErrInvalidCompression
}

// DecodeError is returned when a payload cannot be decompressed.
type DecodeError struct {
	Algorithm Algorithm
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode error: %v", e.Algorithm, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrCorrupt, e.Err}
}

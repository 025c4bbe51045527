package bitmap

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrBadSignature           = errors.New("signature is not BM")
	ErrUnsupportedDepth       = errors.New("only 24 bits per pixel is supported")
	ErrUnsupportedCompression = errors.New("only uncompressed bitmaps are supported")
	ErrBadOffset              = errors.New("pixel data offset points inside the headers")
	ErrTruncated              = errors.New("unexpected end of data")
	ErrImageMustBeSet         = errors.New("image must be set")
)

// FormatError reports an input that is not a bitmap this codec can read.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("bitmap: invalid format: %v", e.Err)
	}

	return fmt.Sprintf("bitmap: invalid format: %s: %v", e.Reason, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatError(err error, reason string) error {
	return &FormatError{Reason: reason, Err: err}
}

// IOError reports a failure of the underlying file or stream.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("bitmap: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("bitmap: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

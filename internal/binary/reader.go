// Package binary provides bounds-checked binary reading primitives
package binary

import (
	"fmt"
	"io"

	"github.com/simonhull/audiosniff/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the total stream size.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads exactly len(b) bytes at the given offset.
//
// Reads that would cross the stream end fail with *types.OutOfBoundsError
// before the underlying reader is touched.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// Head reads the first min(n, Size()) bytes of the stream.
//
// An empty stream or n <= 0 yields an empty slice and no error.
func (sr *SafeReader) Head(n int, what string) ([]byte, error) {
	if n <= 0 || sr.size <= 0 {
		return []byte{}, nil
	}
	if int64(n) > sr.size {
		n = int(sr.size)
	}

	buf := make([]byte, n)
	if err := sr.ReadAt(buf, 0, what); err != nil {
		return nil, err
	}
	return buf, nil
}

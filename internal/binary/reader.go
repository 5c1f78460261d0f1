// Package binary provides bounds-checked binary reading primitives over in-memory buffers.
package binary

import (
	"github.com/simonhull/tagscan/internal/types"
)

// SafeReader wraps a byte buffer with bounds checking and helpful error messages.
//
// Every accessor returns a *types.OutOfBoundsError instead of panicking when
// the requested range does not fit, so walkers can treat any failure as
// end-of-structure.
type SafeReader struct {
	data []byte
	path string
	base int64 // absolute offset of data[0], for error messages
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(data []byte, path string) *SafeReader {
	return &SafeReader{
		data: data,
		path: path,
	}
}

// Path returns the label associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Len returns the number of readable bytes.
func (sr *SafeReader) Len() int {
	return len(sr.data)
}

// Base returns the absolute offset of this reader's first byte.
func (sr *SafeReader) Base() int64 {
	return sr.base
}

// Bytes returns the n bytes at off without copying.
func (sr *SafeReader) Bytes(off, n int, what string) ([]byte, error) {
	if err := sr.check(off, n, what); err != nil {
		return nil, err
	}
	return sr.data[off : off+n], nil
}

// Sub returns a reader restricted to the n bytes at off.
// Offsets in errors from the returned reader stay absolute.
func (sr *SafeReader) Sub(off, n int, what string) (*SafeReader, error) {
	b, err := sr.Bytes(off, n, what)
	if err != nil {
		return nil, err
	}
	return &SafeReader{data: b, path: sr.path, base: sr.base + int64(off)}, nil
}

// check validates that [off, off+n) lies inside the buffer.
// Written as subtraction so huge declared lengths cannot overflow.
func (sr *SafeReader) check(off, n int, what string) error {
	size := len(sr.data)
	if off < 0 || n < 0 || off > size || n > size-off {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: sr.base + int64(off),
			Length: n,
			Size:   sr.base + int64(size),
		}
	}
	return nil
}

// Read reads a big-endian value of type T from the given offset.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int, what string) (T, error) {
	return ReadEndian[T](sr, off, what, BigEndian)
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a big-endian numeric value and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	return ReadValueEndian[T](r, what, BigEndian)
}

// ReadValueLE reads a little-endian numeric value and advances the offset.
func ReadValueLE[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	return ReadValueEndian[T](r, what, LittleEndian)
}

// ReadValueEndian reads a numeric value with the given byte order and advances the offset.
func ReadValueEndian[T uint8 | uint16 | uint32 | uint64](r *Reader, what string, endian Endianness) (T, error) {
	val, err := ReadEndian[T](r.SafeReader, r.offset, what, endian)
	if err != nil {
		var zero T
		return zero, err
	}

	r.offset += sizeOf[T]()
	return val, nil
}

// ReadBytes returns the next n bytes without copying and advances the offset.
func (r *Reader) ReadBytes(n int, what string) ([]byte, error) {
	b, err := r.SafeReader.Bytes(r.offset, n, what)
	if err != nil {
		return nil, err
	}

	r.offset += n
	return b, nil
}

// ReadString reads a string of the given length and advances the offset.
func (r *Reader) ReadString(length int, what string) (string, error) {
	b, err := r.ReadBytes(length, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Skip advances the offset by n bytes, failing if fewer than n remain.
func (r *Reader) Skip(n int, what string) error {
	if err := r.SafeReader.check(r.offset, n, what); err != nil {
		return err
	}
	r.offset += n
	return nil
}

// Offset returns the current offset.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	if r.offset >= r.Len() {
		return 0
	}
	return r.Len() - r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a big-endian value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	return ReadChainedEndian[T](cr, what, BigEndian)
}

// ReadChainedLE reads a little-endian value with deferred error checking.
func ReadChainedLE[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	return ReadChainedEndian[T](cr, what, LittleEndian)
}

// ReadChainedEndian reads a value in the given byte order with deferred error checking.
func ReadChainedEndian[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string, endian Endianness) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValueEndian[T](cr.Reader, what, endian)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Bytes reads n raw bytes, accumulating any error.
func (cr *ChainReader) Bytes(n int, what string) []byte {
	if cr.err != nil {
		return nil
	}

	b, err := cr.Reader.ReadBytes(n, what)
	if err != nil {
		cr.err = err
		return nil
	}

	return b
}

// String reads a string, accumulating any error.
func (cr *ChainReader) String(length int, what string) string {
	if cr.err != nil {
		return ""
	}

	val, err := cr.Reader.ReadString(length, what)
	if err != nil {
		cr.err = err
		return ""
	}

	return val
}

// Skip skips n bytes, accumulating any error.
func (cr *ChainReader) Skip(n int, what string) {
	if cr.err != nil {
		return
	}
	cr.err = cr.Reader.Skip(n, what)
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}

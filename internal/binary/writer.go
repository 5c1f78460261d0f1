package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter wraps io.Writer with position tracking.
//
// The decoder never writes tags; SafeWriter builds byte-exact ID3 and FLAC
// structures for tests and benchmarks.
type SafeWriter struct {
	w      io.Writer
	offset int64
	err    error
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{
		w: w,
	}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// Err returns the first write error, if any.
func (sw *SafeWriter) Err() error {
	return sw.err
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	if sw.err != nil {
		return sw.err
	}
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	sw.err = err
	return err
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// Write writes a value of type T in big-endian byte order.
// T must be uint8, uint16, uint32, or uint64.
func Write[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T) error {
	return writeEndian(sw, val, binary.BigEndian)
}

// WriteLE writes a value of type T in little-endian byte order.
// T must be uint8, uint16, uint32, or uint64.
func WriteLE[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T) error {
	return writeEndian(sw, val, binary.LittleEndian)
}

func writeEndian[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T, order binary.ByteOrder) error {
	buf := make([]byte, sizeOf[T]())

	var zero T
	switch any(zero).(type) {
	case uint8:
		buf[0] = byte(val)
	case uint16:
		order.PutUint16(buf, uint16(val))
	case uint32:
		order.PutUint32(buf, uint32(val))
	case uint64:
		order.PutUint64(buf, uint64(val))
	}

	return sw.WriteBytes(buf)
}

// WriteUint24 writes the low 24 bits of v in big-endian byte order.
func (sw *SafeWriter) WriteUint24(v uint32) error {
	return sw.WriteBytes([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
}

// WriteSynchsafe writes v as a 4-byte synchsafe integer.
// Only the low 28 bits of v are representable.
func (sw *SafeWriter) WriteSynchsafe(v uint32) error {
	return sw.WriteBytes(EncodeSynchsafe(v))
}

// EncodeSynchsafe returns the 4-byte synchsafe encoding of v.
func EncodeSynchsafe(v uint32) []byte {
	return []byte{
		byte(v>>21) & 0x7F,
		byte(v>>14) & 0x7F,
		byte(v>>7) & 0x7F,
		byte(v) & 0x7F,
	}
}

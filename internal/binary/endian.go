package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: ID3v2 frame headers, MPEG frame headers, FLAC block headers and PICTURE fields.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: FLAC Vorbis comments.
	LittleEndian
)

// ReadLE reads a numeric value of type T at the given offset using little-endian byte order.
//
// Example:
//
//	length, err := binary.ReadLE[uint32](sr, offset, "vorbis comment length")
func ReadLE[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int, what string) (T, error) {
	return ReadEndian[T](sr, off, what, LittleEndian)
}

// ReadBE reads a numeric value of type T at the given offset using big-endian byte order.
//
// Equivalent to Read() but more explicit about byte order.
func ReadBE[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int, what string) (T, error) {
	return ReadEndian[T](sr, off, what, BigEndian)
}

// ReadEndian reads a numeric value of type T at the given offset with specified byte order.
//
// This is the low-level function used by Read, ReadLE, and ReadBE.
// Most code should use the convenience wrappers instead.
func ReadEndian[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int, what string, endian Endianness) (T, error) {
	var zero T

	buf, err := sr.Bytes(off, sizeOf[T](), what)
	if err != nil {
		return zero, err
	}

	var order binary.ByteOrder = binary.BigEndian
	if endian == LittleEndian {
		order = binary.LittleEndian
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(order.Uint16(buf))
	case uint32:
		val = T(order.Uint32(buf))
	case uint64:
		val = T(order.Uint64(buf))
	}

	return val, nil
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		return 1
	}
}

// Synchsafe decodes a 4-byte synchsafe integer (7 significant bits per byte).
// ID3v2 uses this encoding so that no size byte can look like an MPEG sync.
// Returns 0 if b is shorter than 4 bytes.
func Synchsafe(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// Uint24 decodes a 3-byte big-endian integer.
// Returns 0 if b is shorter than 3 bytes.
func Uint24(b []byte) uint32 {
	if len(b) < 3 {
		return 0
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// IndexZero returns the index of the first zero byte at or after start, or -1.
func IndexZero(b []byte, start int) int {
	if start < 0 || start >= len(b) {
		return -1
	}
	for i := start; i < len(b); i++ {
		if b[i] == 0 {
			return i
		}
	}
	return -1
}

// IndexZero16 returns the index of the first aligned pair of zero bytes,
// stepping two bytes at a time from start, or -1.
func IndexZero16(b []byte, start int) int {
	if start < 0 {
		return -1
	}
	for i := start; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return -1
}

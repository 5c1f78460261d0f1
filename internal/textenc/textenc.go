// Package textenc decodes the text encodings used by ID3 tags.
//
// Every decoder returns ("", false) when the input cannot be represented
// as a valid string. An empty result after trimming is also reported as
// absent so callers never store blank values.
package textenc

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
)

// Encoding is the ID3v2 text encoding byte.
type Encoding byte

const (
	Latin1  Encoding = 0 // ISO-8859-1
	UTF16   Encoding = 1 // UTF-16 with byte order mark
	UTF16BE Encoding = 2 // UTF-16 big-endian, no BOM
	UTF8    Encoding = 3
)

const numEncodings = 4

// Valid reports whether e is one of the four defined encodings.
func (e Encoding) Valid() bool {
	return e < numEncodings
}

// TerminatorSize returns the width of a string terminator in e:
// one byte for Latin-1 and UTF-8, two bytes for the UTF-16 forms and
// for any undefined encoding.
func (e Encoding) TerminatorSize() int {
	if e == Latin1 || e == UTF8 {
		return 1
	}
	return 2
}

func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "ISO-8859-1"
	case UTF16:
		return "UTF-16"
	case UTF16BE:
		return "UTF-16BE"
	case UTF8:
		return "UTF-8"
	default:
		return "unknown"
	}
}

// Decode decodes b according to e, capping it to maxBytes first.
// A cap of zero or less leaves nothing to decode.
func Decode(e Encoding, b []byte, maxBytes int) (string, bool) {
	if len(b) > maxBytes {
		b = b[:max(maxBytes, 0)]
	}

	switch e {
	case Latin1:
		return DecodeLatin1(b)
	case UTF16:
		return DecodeUTF16BOM(b)
	case UTF16BE:
		return DecodeUTF16(b, true)
	case UTF8:
		return DecodeUTF8(b)
	default:
		return "", false
	}
}

// DecodeLatin1 maps each byte to the code point of the same value after
// dropping trailing NUL and space bytes.
func DecodeLatin1(b []byte) (string, bool) {
	b = bytes.TrimRight(b, "\x00 ")
	if len(b) == 0 {
		return "", false
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// DecodeUTF8 validates b strictly and trims whitespace and NUL from both ends.
func DecodeUTF8(b []byte) (string, bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	return nonEmpty(Trim(string(b)))
}

// DecodeUTF16BOM reads an optional byte order mark and decodes the rest.
// FF FE selects little-endian, FE FF big-endian; with no mark the bytes
// are read as little-endian from the start. Fewer than two bytes is absent.
func DecodeUTF16BOM(b []byte) (string, bool) {
	if len(b) < 2 {
		return "", false
	}

	switch {
	case b[0] == 0xFF && b[1] == 0xFE:
		return DecodeUTF16(b[2:], false)
	case b[0] == 0xFE && b[1] == 0xFF:
		return DecodeUTF16(b[2:], true)
	default:
		return DecodeUTF16(b, false)
	}
}

// DecodeUTF16 decodes 16-bit units until a zero unit or the end of b.
// A dangling odd byte is ignored. Unpaired surrogates make the whole
// value absent rather than being replaced.
func DecodeUTF16(b []byte, bigEndian bool) (string, bool) {
	units := unitsBeforeZero(b, bigEndian)
	if !validSurrogates(b[:units*2], bigEndian) {
		return "", false
	}

	endian := xunicode.LittleEndian
	if bigEndian {
		endian = xunicode.BigEndian
	}
	out, err := xunicode.UTF16(endian, xunicode.IgnoreBOM).NewDecoder().Bytes(b[:units*2])
	if err != nil {
		return "", false
	}
	return nonEmpty(Trim(string(out)))
}

// Trim strips whitespace and NUL characters from both ends of s.
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == 0 || unicode.IsSpace(r)
	})
}

func unit(b []byte, i int, bigEndian bool) uint16 {
	if bigEndian {
		return uint16(b[i])<<8 | uint16(b[i+1])
	}
	return uint16(b[i]) | uint16(b[i+1])<<8
}

func unitsBeforeZero(b []byte, bigEndian bool) int {
	n := 0
	for i := 0; i+1 < len(b); i += 2 {
		if unit(b, i, bigEndian) == 0 {
			break
		}
		n++
	}
	return n
}

// validSurrogates reports whether every high surrogate is followed by a
// low surrogate and no low surrogate appears alone.
func validSurrogates(b []byte, bigEndian bool) bool {
	for i := 0; i+1 < len(b); i += 2 {
		u := unit(b, i, bigEndian)
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+3 >= len(b) {
				return false
			}
			next := unit(b, i+2, bigEndian)
			if next < 0xDC00 || next >= 0xE000 {
				return false
			}
			i += 2
		case u >= 0xDC00 && u < 0xE000:
			return false
		}
	}
	return true
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

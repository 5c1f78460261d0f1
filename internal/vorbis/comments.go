// Package vorbis reads Vorbis comment blocks.
//
// Vorbis comments are UTF-8 strings in "KEY=VALUE" format with
// case-insensitive keys. FLAC stores them in its VORBIS_COMMENT block.
package vorbis

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	binutil "github.com/simonhull/tagscan/internal/binary"
	"github.com/simonhull/tagscan/internal/textenc"
	"github.com/simonhull/tagscan/internal/types"
)

// SplitComment splits a single comment at its first '='.
// It fails if there is no separator or the key is not valid UTF-8.
func SplitComment(comment []byte) (key string, value []byte, ok bool) {
	eq := bytes.IndexByte(comment, '=')
	if eq < 0 || !utf8.Valid(comment[:eq]) {
		return "", nil, false
	}
	return string(comment[:eq]), comment[eq+1:], true
}

// ParseComments reads a comment block and fills the title, artist and
// album of rec. Every entry is cut to maxText bytes before it is split.
//
// Layout (all lengths 32-bit little-endian):
//
//	[4]        vendor string length
//	[n]        vendor string
//	[4]        comment count
//	repeated:  [4] comment length, [n] "KEY=VALUE"
//
// Fields found before a truncated entry are kept; the returned error
// describes where the block ran out.
func ParseComments(block *binutil.SafeReader, rec *types.Record, maxText int) error {
	r := binutil.NewReader(block, 0)

	vendorLength, err := binutil.ReadValueLE[uint32](r, "vendor string length")
	if err != nil {
		return err
	}
	if err := r.Skip(int(vendorLength), "vendor string"); err != nil {
		return err
	}

	count, err := binutil.ReadValueLE[uint32](r, "comment count")
	if err != nil {
		return err
	}

	for i := uint32(0); i < count; i++ {
		length, err := binutil.ReadValueLE[uint32](r, "comment length")
		if err != nil {
			return fmt.Errorf("comment %d of %d: %w", i+1, count, err)
		}
		comment, err := r.ReadBytes(int(length), "comment")
		if err != nil {
			return fmt.Errorf("comment %d of %d: %w", i+1, count, err)
		}

		if len(comment) > maxText {
			comment = comment[:max(maxText, 0)]
		}
		applyComment(comment, rec)
	}

	return nil
}

func applyComment(comment []byte, rec *types.Record) {
	key, value, ok := SplitComment(comment)
	if !ok {
		return
	}

	field, ok := types.FieldForKey(key)
	if !ok || rec.Has(field) {
		return
	}

	if text, ok := textenc.DecodeUTF8(value); ok {
		rec.Fill(field, text)
	}
}

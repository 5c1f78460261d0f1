package mp3

import (
	"encoding/binary"
	"errors"

	"go.uber.org/zap"

	binutil "github.com/simonhull/tagscan/internal/binary"
	"github.com/simonhull/tagscan/internal/textenc"
	"github.com/simonhull/tagscan/internal/types"
)

const id3v2HeaderSize = 10

// errEndOfFrames marks padding, an empty frame or a truncated frame header.
var errEndOfFrames = errors.New("end of frames")

// textFrames maps the text frame ids of every supported version to fields.
var textFrames = map[string]types.Field{
	"TT2":  types.FieldTitle,
	"TIT2": types.FieldTitle,
	"TP1":  types.FieldArtist,
	"TPE1": types.FieldArtist,
	"TAL":  types.FieldAlbum,
	"TALB": types.FieldAlbum,
}

// ID3v2Header represents an ID3v2 tag header
type ID3v2Header struct {
	Version  byte // Major version; anything but 2 and 4 reads as 2.3
	Revision byte // Minor version
	Flags    byte
	Size     uint32 // Tag size (excluding header), synchsafe
}

// End returns the offset just past the tag as declared, unclamped.
// MPEG scanning starts here.
func (h ID3v2Header) End() int {
	return id3v2HeaderSize + int(h.Size)
}

// frameHeaderSize is 6 for v2.2 (3-byte id and size), 10 otherwise.
func (h ID3v2Header) frameHeaderSize() int {
	if h.Version == 2 {
		return 6
	}
	return 10
}

// ID3v2Frame represents a single ID3v2 frame
type ID3v2Frame struct {
	ID     string // 3-character (v2.2) or 4-character frame ID
	Data   []byte // Frame body, aliasing the input buffer
	Offset int    // Offset of the frame header
	Size   uint32 // Frame size (excluding header)
	Flags  uint16 // Frame flags, always zero for v2.2
}

// skipped reports whether the frame uses compression, encryption,
// unsynchronisation or a data length indicator.
func (f ID3v2Frame) skipped() bool {
	return f.Flags&0x000F != 0
}

// parseID3v2Header reads the 10-byte tag header at the start of the buffer.
func parseID3v2Header(sr *binutil.SafeReader) (ID3v2Header, bool) {
	buf, err := sr.Bytes(0, id3v2HeaderSize, "ID3v2 header")
	if err != nil || string(buf[0:3]) != "ID3" {
		return ID3v2Header{}, false
	}

	return ID3v2Header{
		Version:  buf[3],
		Revision: buf[4],
		Flags:    buf[5],
		Size:     binutil.Synchsafe(buf[6:10]),
	}, true
}

// skipExtendedHeader returns the offset of the first frame.
// The declared size is added as is: synchsafe for v2.4, plain big-endian
// for v2.3 and later unknown versions.
func skipExtendedHeader(sr *binutil.SafeReader, header ID3v2Header) int {
	offset := id3v2HeaderSize
	if header.Flags&0x40 == 0 || header.Version < 3 {
		return offset
	}

	buf, err := sr.Bytes(offset, 4, "extended header size")
	if err != nil {
		return offset
	}

	if header.Version == 4 {
		return offset + int(binutil.Synchsafe(buf))
	}
	return offset + int(binary.BigEndian.Uint32(buf))
}

// parseID3v2 walks the frames of the tag and fills rec.
func parseID3v2(sr *binutil.SafeReader, header ID3v2Header, rec *types.Record, cfg types.Config, log *zap.Logger) {
	if header.Version < 2 || header.Version > 4 {
		log.Debug("unknown ID3v2 version, reading frames as 2.3", zap.Uint8("version", header.Version))
	}

	// Frames end size bytes after the extended header, clamped to the buffer.
	offset := skipExtendedHeader(sr, header)
	tagEnd := min(offset+int(header.Size), sr.Len())
	if offset >= tagEnd {
		return
	}
	tag, err := sr.Sub(0, tagEnd, "ID3v2 tag")
	if err != nil {
		return
	}

	for offset < tagEnd {
		frame, err := readFrame(tag, header, offset)
		if errors.Is(err, errEndOfFrames) {
			break
		}
		if err != nil {
			rec.Warn("id3v2", err.Error(), int64(offset))
			log.Debug("frame overruns tag",
				zap.String("frame", frame.ID),
				zap.Int("offset", offset),
				zap.Uint32("size", frame.Size))
			break
		}

		offset += header.frameHeaderSize() + int(frame.Size)

		if frame.skipped() {
			log.Debug("skipping flagged frame", zap.String("frame", frame.ID), zap.Uint16("flags", frame.Flags))
			continue
		}

		handleFrame(frame, rec, cfg, log)
	}
}

// readFrame reads the frame header at offset and slices its body.
// It returns errEndOfFrames for padding, a zero size or a header that
// does not fit, and an out-of-bounds error for a body that overruns.
func readFrame(tag *binutil.SafeReader, header ID3v2Header, offset int) (ID3v2Frame, error) {
	hdrSize := header.frameHeaderSize()
	buf, err := tag.Bytes(offset, hdrSize, "frame header")
	if err != nil {
		return ID3v2Frame{}, errEndOfFrames
	}

	frame := ID3v2Frame{Offset: offset}
	var id []byte
	switch header.Version {
	case 2:
		id = buf[0:3]
		frame.Size = binutil.Uint24(buf[3:6])
	case 4:
		id = buf[0:4]
		frame.Size = binutil.Synchsafe(buf[4:8])
		frame.Flags = binary.BigEndian.Uint16(buf[8:10])
	default:
		id = buf[0:4]
		frame.Size = binary.BigEndian.Uint32(buf[4:8])
		frame.Flags = binary.BigEndian.Uint16(buf[8:10])
	}

	if allZero(id) || frame.Size == 0 {
		return ID3v2Frame{}, errEndOfFrames
	}
	frame.ID = string(id)

	frame.Data, err = tag.Bytes(offset+hdrSize, int(frame.Size), "frame "+frame.ID+" data")
	if err != nil {
		return frame, err
	}
	return frame, nil
}

func handleFrame(frame ID3v2Frame, rec *types.Record, cfg types.Config, log *zap.Logger) {
	if field, ok := textFrames[frame.ID]; ok {
		parseTextFrame(frame, field, rec, cfg.Limits.MaxTextBytes)
		return
	}

	var (
		pic types.Picture
		err error
	)
	switch frame.ID {
	case "APIC":
		pic, err = parseAPICFrame(frame.Data, cfg.Limits)
	case "PIC":
		pic, err = parsePICFrame(frame.Data, cfg.Limits)
	default:
		return
	}

	if err != nil {
		log.Debug("rejected picture", zap.String("frame", frame.ID), zap.Error(err))
		if !errors.Is(err, errCoverTooLarge) {
			rec.Warn("picture", frame.ID+": "+err.Error(), int64(frame.Offset))
		}
		return
	}
	rec.OfferPicture(pic)
}

// parseTextFrame decodes a text frame into field unless it is already set.
func parseTextFrame(frame ID3v2Frame, field types.Field, rec *types.Record, maxText int) {
	if rec.Has(field) || len(frame.Data) < 1 {
		return
	}

	if text, ok := textenc.Decode(textenc.Encoding(frame.Data[0]), frame.Data[1:], maxText); ok {
		rec.Fill(field, text)
	}
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// Package flac walks the metadata blocks of a FLAC stream.
package flac

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	binutil "github.com/simonhull/tagscan/internal/binary"
	"github.com/simonhull/tagscan/internal/registry"
	"github.com/simonhull/tagscan/internal/types"
	"github.com/simonhull/tagscan/internal/vorbis"
)

// Metadata block types
const (
	blockTypeStreamInfo    = 0
	blockTypePadding       = 1
	blockTypeApplication   = 2
	blockTypeSeekTable     = 3
	blockTypeVorbisComment = 4
	blockTypeCueSheet      = 5
	blockTypePicture       = 6
)

const (
	magicSize         = 4
	blockHeaderSize   = 4
	minStreamInfoSize = 18
	minPictureSize    = 32
)

var (
	errStreamInfoTooShort = errors.New("STREAMINFO block too short")
	errPictureTooShort    = errors.New("PICTURE block too short")
	errPictureNoData      = errors.New("PICTURE block has no image data")
	errCoverTooLarge      = errors.New("picture exceeds cover size limit")
)

// blockHeader is the 4-byte header in front of every metadata block.
type blockHeader struct {
	offset    int
	length    int
	blockType uint8
	last      bool
}

func (h blockHeader) name() string {
	switch h.blockType {
	case blockTypeStreamInfo:
		return "STREAMINFO"
	case blockTypePadding:
		return "PADDING"
	case blockTypeApplication:
		return "APPLICATION"
	case blockTypeSeekTable:
		return "SEEKTABLE"
	case blockTypeVorbisComment:
		return "VORBIS_COMMENT"
	case blockTypeCueSheet:
		return "CUESHEET"
	case blockTypePicture:
		return "PICTURE"
	default:
		return fmt.Sprintf("block type %d", h.blockType)
	}
}

// parser implements the registry.FormatParser interface for FLAC streams
type parser struct{}

// Parse walks the metadata blocks after the "fLaC" marker and fills rec.
// It stops at the block flagged last, at the end of the buffer, or at a
// block whose length overruns the buffer.
func (p *parser) Parse(data []byte, rec *types.Record, cfg types.Config) {
	sr := binutil.NewSafeReader(data, cfg.Path)
	log := cfg.Log().With(zap.String("parser", "flac"))

	magic, err := sr.Bytes(0, magicSize, "FLAC magic bytes")
	if err != nil || string(magic) != "fLaC" {
		log.Debug("missing FLAC marker")
		return
	}

	offset := magicSize
	for offset+blockHeaderSize <= sr.Len() {
		header, err := readBlockHeader(sr, offset)
		if err != nil {
			break
		}
		offset += blockHeaderSize

		block, err := sr.Sub(offset, header.length, header.name()+" block")
		if err != nil {
			rec.Warn("flac", err.Error(), int64(header.offset))
			log.Debug("block overruns buffer",
				zap.String("block", header.name()),
				zap.Int("offset", header.offset),
				zap.Int("length", header.length))
			break
		}

		handleBlock(header, block, rec, cfg, log)

		offset += header.length
		if header.last {
			break
		}
	}
}

// readBlockHeader decodes [last(1) | type(7)] [length(24)] at offset.
func readBlockHeader(sr *binutil.SafeReader, offset int) (blockHeader, error) {
	raw, err := binutil.Read[uint32](sr, offset, "metadata block header")
	if err != nil {
		return blockHeader{}, err
	}
	return blockHeader{
		offset:    offset,
		last:      raw>>31 == 1,
		blockType: uint8((raw >> 24) & 0x7F),
		length:    int(raw & 0x00FFFFFF),
	}, nil
}

func handleBlock(header blockHeader, block *binutil.SafeReader, rec *types.Record, cfg types.Config, log *zap.Logger) {
	switch header.blockType {
	case blockTypeStreamInfo:
		if err := parseStreamInfo(block, rec); err != nil {
			rec.Warn("flac", err.Error(), block.Base())
		}

	case blockTypeVorbisComment:
		if !rec.NeedsText() {
			return
		}
		if err := vorbis.ParseComments(block, rec, cfg.Limits.MaxTextBytes); err != nil {
			rec.Warn("vorbis", err.Error(), block.Base())
			log.Debug("truncated Vorbis comments", zap.Error(err))
		}

	case blockTypePicture:
		pic, err := parsePicture(block, cfg.Limits)
		if err != nil {
			log.Debug("rejected picture", zap.Int64("offset", block.Base()), zap.Error(err))
			if !errors.Is(err, errCoverTooLarge) {
				rec.Warn("picture", err.Error(), block.Base())
			}
			return
		}
		rec.OfferPicture(pic)

	default:
		log.Debug("skipping block", zap.String("block", header.name()), zap.Int("length", header.length))
	}
}

// parseStreamInfo reads sample rate, channels and bit depth.
//
// Bytes 10-13 hold, most significant bit first:
//
//	[20 bits] sample rate
//	[3 bits]  channels - 1
//	[5 bits]  bits per sample - 1
//
// Each value is stored only when it is in range.
func parseStreamInfo(block *binutil.SafeReader, rec *types.Record) error {
	if block.Len() < minStreamInfoSize {
		return fmt.Errorf("%w: %d bytes", errStreamInfoTooShort, block.Len())
	}

	packed, err := binutil.Read[uint32](block, 10, "STREAMINFO sample format")
	if err != nil {
		return err
	}

	sampleRate := int(packed >> 12)
	channels := int((packed>>9)&0x7) + 1
	bitDepth := int((packed>>4)&0x1F) + 1

	rec.Audio.Codec = "FLAC"
	if sampleRate > 0 {
		rec.Audio.SampleRate = sampleRate
	}
	if bitDepth >= 1 && bitDepth <= 32 {
		rec.Audio.BitDepth = bitDepth
	}
	if channels >= 1 && channels <= 8 {
		rec.Audio.Channels = channels
	}
	return nil
}

// parsePicture reads a PICTURE block.
// Format (all integers 32-bit big-endian):
//
//	[4]  picture type
//	[4]  MIME type length, then MIME type
//	[4]  description length, then UTF-8 description
//	[16] width, height, color depth, indexed colors
//	[4]  picture data length, then picture data
func parsePicture(block *binutil.SafeReader, limits types.Limits) (types.Picture, error) {
	if block.Len() < minPictureSize {
		return types.Picture{}, fmt.Errorf("%w: %d bytes", errPictureTooShort, block.Len())
	}

	cr := binutil.NewChainReader(binutil.NewReader(block, 0))
	pictureType := binutil.ReadChained[uint32](cr, "picture type")
	mimeType := cr.Bytes(int(binutil.ReadChained[uint32](cr, "MIME type length")), "MIME type")
	description := cr.Bytes(int(binutil.ReadChained[uint32](cr, "description length")), "description")
	cr.Skip(16, "picture dimensions")
	dataLength := binutil.ReadChained[uint32](cr, "picture data length")
	if err := cr.Error(); err != nil {
		return types.Picture{}, err
	}

	if dataLength == 0 {
		return types.Picture{}, errPictureNoData
	}
	// Oversized pictures are dropped before the bounds check.
	if int64(dataLength) > int64(limits.MaxCoverBytes) {
		return types.Picture{}, errCoverTooLarge
	}
	imageData := cr.Bytes(int(dataLength), "picture data")
	if err := cr.Error(); err != nil {
		return types.Picture{}, err
	}

	pic := types.Picture{
		MIMEType: strings.ToValidUTF8(string(mimeType), "\uFFFD"),
		Data:     imageData,
		Type:     types.ArtworkOther,
	}
	if pictureType <= 255 {
		pic.Type = types.ArtworkType(pictureType)
	}
	if utf8.Valid(description) {
		pic.Description = string(description)
	}
	return pic, nil
}

// init registers the FLAC parser
func init() {
	registry.Register(types.FormatFLAC, &parser{})
}

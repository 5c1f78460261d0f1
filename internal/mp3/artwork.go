package mp3

import (
	"errors"
	"strings"

	binutil "github.com/simonhull/tagscan/internal/binary"
	"github.com/simonhull/tagscan/internal/textenc"
	"github.com/simonhull/tagscan/internal/types"
)

var (
	errAPICTooShort   = errors.New("APIC frame too short")
	errAPICNoMIMETerm = errors.New("APIC MIME type not null-terminated")
	errAPICTruncated  = errors.New("APIC frame truncated after MIME type")
	errPICTooShort    = errors.New("PIC frame too short")
	errNoDescTerm     = errors.New("picture description not terminated")
	errPictureNoData  = errors.New("picture frame has no image data")
	errCoverTooLarge  = errors.New("picture exceeds cover size limit")
)

const unknownPictureMIME = "image/unknown"

// parseAPICFrame parses an APIC (Attached Picture) frame.
// Format:
//
//	[1 byte]              Text encoding
//	[null-terminated]     MIME type
//	[1 byte]              Picture type
//	[terminated]          Description (1 or 2 zero bytes by encoding)
//	[remaining]           Picture data
func parseAPICFrame(data []byte, limits types.Limits) (types.Picture, error) {
	if len(data) < 4 {
		return types.Picture{}, errAPICTooShort
	}

	encoding := textenc.Encoding(data[0])
	pos := 1

	// MIME type is always ISO-8859-1
	mimeEnd := binutil.IndexZero(data, pos)
	if mimeEnd < 0 {
		return types.Picture{}, errAPICNoMIMETerm
	}
	mimeType := strings.ToValidUTF8(string(data[pos:mimeEnd]), "\uFFFD")
	pos = mimeEnd + 1

	if pos >= len(data) {
		return types.Picture{}, errAPICTruncated
	}

	pictureType := types.ArtworkType(data[pos])
	pos++

	return finishPicture(data, pos, encoding, mimeType, pictureType, limits)
}

// parsePICFrame parses an ID3v2.2 PIC frame, which carries a 3-character
// image format code instead of a MIME string.
func parsePICFrame(data []byte, limits types.Limits) (types.Picture, error) {
	if len(data) < 5 {
		return types.Picture{}, errPICTooShort
	}

	encoding := textenc.Encoding(data[0])
	mimeType := picFormatMIME(string(data[1:4]))
	pictureType := types.ArtworkType(data[4])

	return finishPicture(data, 5, encoding, mimeType, pictureType, limits)
}

// finishPicture reads the description at pos and takes the remaining
// bytes as the image.
func finishPicture(data []byte, pos int, encoding textenc.Encoding, mimeType string, pictureType types.ArtworkType, limits types.Limits) (types.Picture, error) {
	descEnd := findNullTerminator(data, pos, encoding)
	if descEnd < 0 {
		return types.Picture{}, errNoDescTerm
	}
	description, _ := textenc.Decode(encoding, data[pos:descEnd], limits.MaxTextBytes)
	pos = descEnd + encoding.TerminatorSize()

	if pos >= len(data) {
		return types.Picture{}, errPictureNoData
	}

	imageData := data[pos:]
	if len(imageData) > limits.MaxCoverBytes {
		return types.Picture{}, errCoverTooLarge
	}

	if mimeType == "" {
		mimeType = detectMIMEType(imageData)
	}

	return types.Picture{
		MIMEType:    mimeType,
		Description: description,
		Data:        imageData,
		Type:        pictureType,
	}, nil
}

// findNullTerminator returns the index of the terminator at or after
// start: a single zero byte for Latin-1 and UTF-8, an aligned zero pair
// otherwise.
func findNullTerminator(data []byte, start int, encoding textenc.Encoding) int {
	if encoding.TerminatorSize() == 2 {
		return binutil.IndexZero16(data, start)
	}
	return binutil.IndexZero(data, start)
}

func picFormatMIME(code string) string {
	switch code {
	case "PNG":
		return "image/png"
	case "JPG":
		return "image/jpeg"
	case "GIF":
		return "image/gif"
	default:
		return unknownPictureMIME
	}
}

// detectMIMEType detects image MIME type from magic bytes.
func detectMIMEType(data []byte) string {
	if len(data) < 4 {
		return unknownPictureMIME
	}

	switch {
	// JPEG: FF D8 FF
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg"
	// PNG: 89 50 4E 47
	case data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47:
		return "image/png"
	// GIF: 47 49 46
	case data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46:
		return "image/gif"
	// BMP: 42 4D
	case data[0] == 0x42 && data[1] == 0x4D:
		return "image/bmp"
	// WebP: RIFF....WEBP
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "image/webp"
	}

	return unknownPictureMIME
}

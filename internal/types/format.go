package types

import (
	"bytes"
	"strconv"
)

// Format represents the detected container family.
type Format int

const (
	// FormatUnknown means no signature matched. Such buffers still go
	// through the MP3 pipeline.
	FormatUnknown Format = iota // Unknown
	// FormatFLAC represents native FLAC streams.
	FormatFLAC // FLAC
	// FormatMP3 represents MPEG audio with optional ID3 tags.
	FormatMP3 // MP3
)

var formatNames = [...]string{
	FormatUnknown: "Unknown",
	FormatFLAC:    "FLAC",
	FormatMP3:     "MP3",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formatNames[f]
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatFLAC:
		return []string{".flac"}
	case FormatMP3:
		return []string{".mp3", ".mp2", ".mpga"}
	default:
		return nil
	}
}

var flacMagic = []byte("fLaC")

// DetectFormat determines the container family by examining magic bytes.
//
// Detection never fails: buffers shorter than a signature, or with no
// recognized signature, report FormatUnknown.
func DetectFormat(data []byte) Format {
	if bytes.HasPrefix(data, flacMagic) {
		return FormatFLAC
	}

	if bytes.HasPrefix(data, []byte("ID3")) {
		return FormatMP3
	}

	// Bare MPEG frame sync (11 set bits)
	if len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0 {
		return FormatMP3
	}

	return FormatUnknown
}

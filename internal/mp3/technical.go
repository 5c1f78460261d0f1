package mp3

import (
	binutil "github.com/simonhull/tagscan/internal/binary"
	"github.com/simonhull/tagscan/internal/types"
)

// mpegScanWindow bounds how far past the tag the frame sync search runs.
const mpegScanWindow = 8192

// sampleRateTable is indexed by [version][sample rate index] in Hz.
// Version: 0 = MPEG2.5, 1 = reserved, 2 = MPEG2, 3 = MPEG1.
var sampleRateTable = [4][3]int{
	{11025, 12000, 8000},
	{0, 0, 0},
	{22050, 24000, 16000},
	{44100, 48000, 32000},
}

// bitrateTable is indexed by [table][bitrate index] in kbps.
// Index 0 is free format and 15 is invalid; both are rejected before lookup.
var bitrateTable = [5][15]int{
	{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448}, // V1 Layer I
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},    // V1 Layer II
	{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},     // V1 Layer III
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},    // V2/V2.5 Layer I
	{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},         // V2/V2.5 Layer II & III
}

// frameHeader holds the fields of a 4-byte MPEG audio frame header.
type frameHeader struct {
	version      uint32 // 0 = 2.5, 1 = reserved, 2 = 2, 3 = 1
	layer        uint32 // 0 = reserved, 1 = III, 2 = II, 3 = I
	bitrateIndex uint32
	rateIndex    uint32
	channelMode  uint32 // 3 = mono
}

func decodeFrameHeader(header uint32) frameHeader {
	return frameHeader{
		version:      (header >> 19) & 0x3,
		layer:        (header >> 17) & 0x3,
		bitrateIndex: (header >> 12) & 0xF,
		rateIndex:    (header >> 10) & 0x3,
		channelMode:  (header >> 6) & 0x3,
	}
}

func (h frameHeader) valid() bool {
	if h.version == 1 || h.layer == 0 || h.rateIndex == 3 {
		return false
	}
	if h.bitrateIndex == 0 || h.bitrateIndex == 15 {
		return false
	}
	return h.sampleRate() > 0
}

func (h frameHeader) sampleRate() int {
	if h.rateIndex > 2 {
		return 0
	}
	return sampleRateTable[h.version][h.rateIndex]
}

func (h frameHeader) bitrate() int {
	var table int
	switch {
	case h.version == 3 && h.layer == 3:
		table = 0
	case h.version == 3 && h.layer == 2:
		table = 1
	case h.version == 3:
		table = 2
	case h.layer == 3:
		table = 3
	default:
		table = 4
	}
	return bitrateTable[table][h.bitrateIndex]
}

func (h frameHeader) channels() int {
	if h.channelMode == 3 {
		return 1
	}
	return 2
}

func (h frameHeader) codec() string {
	switch h.layer {
	case 3:
		return "MP1"
	case 2:
		return "MP2"
	default:
		return "MP3"
	}
}

// parseTechnicalInfo searches for the first valid frame header in the
// window after start. It does nothing if the stream is already described.
// A single matching header is accepted without checking the next frame.
func parseTechnicalInfo(sr *binutil.SafeReader, start int, rec *types.Record) bool {
	if rec.Audio.Known() {
		return false
	}

	limit := min(start+mpegScanWindow, sr.Len()-3)
	for offset := start; offset < limit; offset++ {
		raw, err := binutil.Read[uint32](sr, offset, "MPEG frame header")
		if err != nil {
			return false
		}

		// Frame sync (11 bits set: 0xFFE00000)
		if raw&0xFFE00000 != 0xFFE00000 {
			continue
		}

		h := decodeFrameHeader(raw)
		if !h.valid() {
			continue
		}

		rec.Audio = types.AudioInfo{
			Codec:      h.codec(),
			SampleRate: h.sampleRate(),
			BitDepth:   16,
			Bitrate:    h.bitrate(),
			Channels:   h.channels(),
		}
		return true
	}

	return false
}

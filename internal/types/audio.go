package types

import (
	"fmt"
	"strings"
)

// AudioInfo represents stream characteristics read from MPEG frame
// headers or FLAC STREAMINFO.
//
// Every numeric field is zero when unknown.
type AudioInfo struct {
	Codec      string // "MP1", "MP2", "MP3" or "FLAC"
	SampleRate int    // Hz
	BitDepth   int    // bits per sample
	Bitrate    int    // kbps, MPEG only
	Channels   int
}

// Known reports whether a stream header has been decoded.
func (a AudioInfo) Known() bool {
	return a.SampleRate > 0
}

// String returns a human-readable representation of the audio info.
// Example output: "MP3 44.1kHz 16-bit stereo 128kbps".
func (a AudioInfo) String() string {
	if !a.Known() {
		return ""
	}

	parts := []string{a.Codec, fmt.Sprintf("%.1fkHz", float64(a.SampleRate)/1000)}
	if a.BitDepth > 0 {
		parts = append(parts, fmt.Sprintf("%d-bit", a.BitDepth))
	}
	parts = append(parts, channelDescription(a.Channels))
	if a.Bitrate > 0 {
		parts = append(parts, fmt.Sprintf("%dkbps", a.Bitrate))
	}

	return join(parts, " ")
}

// channelDescription returns a human-readable channel description.
func channelDescription(channels int) string {
	switch channels {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	case 4:
		return "quad"
	case 6:
		return "5.1"
	case 8:
		return "7.1"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}

// join concatenates strings with a separator, skipping empty strings.
func join(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

// IsHighRes returns true if the audio is high-resolution.
//
// High-resolution is defined as:
//   - Sample rate > 48kHz, OR
//   - Bit depth > 16
func (a AudioInfo) IsHighRes() bool {
	return a.SampleRate > 48000 || a.BitDepth > 16
}

// IsLossless reports whether the codec stores samples without loss.
func (a AudioInfo) IsLossless() bool {
	return a.Codec == "FLAC"
}

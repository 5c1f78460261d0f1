package types

import "testing"

func TestAudioInfo_String(t *testing.T) {
	tests := []struct {
		name  string
		audio AudioInfo
		want  string
	}{
		{
			name: "flac",
			audio: AudioInfo{
				Codec:      "FLAC",
				SampleRate: 44100,
				BitDepth:   16,
				Channels:   2,
			},
			want: "FLAC 44.1kHz 16-bit stereo",
		},
		{
			name: "mp3 with bitrate",
			audio: AudioInfo{
				Codec:      "MP3",
				SampleRate: 44100,
				BitDepth:   16,
				Channels:   1,
				Bitrate:    128,
			},
			want: "MP3 44.1kHz 16-bit mono 128kbps",
		},
		{
			name: "no codec",
			audio: AudioInfo{
				SampleRate: 96000,
				BitDepth:   24,
				Channels:   6,
			},
			want: "96.0kHz 24-bit 5.1",
		},
		{
			name:  "unknown",
			audio: AudioInfo{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.audio.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChannelDescription(t *testing.T) {
	tests := []struct {
		want     string
		channels int
	}{
		{"", 0},
		{"mono", 1},
		{"stereo", 2},
		{"3ch", 3},
		{"quad", 4},
		{"5.1", 6},
		{"7.1", 8},
	}

	for _, tt := range tests {
		if got := channelDescription(tt.channels); got != tt.want {
			t.Errorf("channelDescription(%d) = %q, want %q", tt.channels, got, tt.want)
		}
	}
}

func TestAudioInfo_IsHighRes(t *testing.T) {
	tests := []struct {
		name  string
		audio AudioInfo
		want  bool
	}{
		{"cd quality", AudioInfo{SampleRate: 44100, BitDepth: 16}, false},
		{"48k 16-bit", AudioInfo{SampleRate: 48000, BitDepth: 16}, false},
		{"96k", AudioInfo{SampleRate: 96000, BitDepth: 16}, true},
		{"24-bit", AudioInfo{SampleRate: 44100, BitDepth: 24}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.audio.IsHighRes(); got != tt.want {
				t.Errorf("IsHighRes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAudioInfo_KnownAndLossless(t *testing.T) {
	if (AudioInfo{}).Known() {
		t.Error("zero AudioInfo should not be known")
	}
	flac := AudioInfo{Codec: "FLAC", SampleRate: 44100}
	if !flac.Known() || !flac.IsLossless() {
		t.Error("FLAC stream should be known and lossless")
	}
	if (AudioInfo{Codec: "MP3", SampleRate: 44100}).IsLossless() {
		t.Error("MP3 should not be lossless")
	}
}

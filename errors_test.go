package tagscan

import (
	"strings"
	"testing"
)

func TestOutOfBoundsError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OutOfBoundsError
		contains []string
	}{
		{
			name: "offset beyond buffer size",
			err: &OutOfBoundsError{
				Path:   "test.flac",
				Offset: 1000,
				Length: 4,
				Size:   500,
				What:   "metadata block header",
			},
			contains: []string{"test.flac", "offset 1000 out of bounds", "buffer size: 500", "metadata block header"},
		},
		{
			name: "read would exceed buffer size",
			err: &OutOfBoundsError{
				Path:   "song.mp3",
				Offset: 100,
				Length: 50,
				Size:   120,
				What:   "frame TIT2 data",
			},
			contains: []string{"song.mp3", "read of 50 bytes", "offset 100", "exceed buffer size 120", "frame TIT2 data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestUnsupportedFormatError_Error(t *testing.T) {
	err := &UnsupportedFormatError{
		Path:   "notes.txt",
		Reason: "no MP3 or FLAC signature",
	}

	msg := err.Error()
	if !strings.Contains(msg, "notes.txt") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "no MP3 or FLAC signature") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
	if !strings.Contains(msg, "unsupported format") {
		t.Errorf("error should contain 'unsupported format', got: %s", msg)
	}
}

func TestCorruptedFileError_Error(t *testing.T) {
	err := &CorruptedFileError{
		Path:   "broken.flac",
		Offset: 42,
		Reason: "flac: PICTURE block overruns buffer",
	}

	msg := err.Error()
	if !strings.Contains(msg, "broken.flac") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "offset 42") {
		t.Errorf("error should contain offset, got: %s", msg)
	}
	if !strings.Contains(msg, "PICTURE block overruns buffer") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
	if !strings.Contains(msg, "corrupted file") {
		t.Errorf("error should contain 'corrupted file', got: %s", msg)
	}
}

func TestWarning_String(t *testing.T) {
	w := Warning{Stage: "vorbis", Message: "comment 2 of 3: truncated", Offset: 88}
	if got, want := w.String(), "vorbis (at offset 88): comment 2 of 3: truncated"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	w.Offset = 0
	if got, want := w.String(), "vorbis: comment 2 of 3: truncated"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

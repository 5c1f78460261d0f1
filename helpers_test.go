package tagscan_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bogem/id3v2"
	goflac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacvorbis"
	"github.com/stretchr/testify/require"

	binutil "github.com/simonhull/tagscan/internal/binary"
)

// mpegFrame is an MPEG1 Layer III header: 128 kbps, 44100 Hz, stereo.
var mpegFrame = []byte{0xFF, 0xFB, 0x90, 0x00}

var coverJPEG = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

// garbage has no signature, no frame sync and no ID3v1 trailer.
var garbage = []byte(strings.Repeat("garbage!", 32))

func mp3Fixture(t testing.TB) []byte {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	tag.AddTextFrame("TIT2", id3v2.EncodingUTF8, "Paranoid Android")
	tag.AddTextFrame("TPE1", id3v2.EncodingUTF8, "Radiohead")
	tag.AddTextFrame("TALB", id3v2.EncodingUTF8, "OK Computer")
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     coverJPEG,
	})

	var buf bytes.Buffer
	_, err := tag.WriteTo(&buf)
	require.NoError(t, err)

	buf.Write(mpegFrame)
	buf.Write(make([]byte, 413))
	return buf.Bytes()
}

// truncatedMP3 holds a TIT2 frame followed by a TPE1 frame that overruns
// the tag.
func truncatedMP3() []byte {
	data := []byte("ID3\x03\x00\x00\x00\x00\x00\x1b")
	data = append(data, "TIT2\x00\x00\x00\x05\x00\x00\x00Kept"...)
	data = append(data, "TPE1\x00\x00\x00\xc8\x00\x00\x00Lo"...)
	return data
}

func flacFixture(t testing.TB) []byte {
	t.Helper()

	var si bytes.Buffer
	w := binutil.NewSafeWriter(&si)
	require.NoError(t, w.WriteBytes(make([]byte, 10)))
	// 44100 Hz, 2 channels, 16 bits, 44100 samples
	require.NoError(t, binutil.Write(w, uint64(44100)<<44|uint64(1)<<41|uint64(15)<<36|44100))
	require.NoError(t, w.WriteBytes(make([]byte, 16)))

	vc := flacvorbis.New()
	require.NoError(t, vc.Add(flacvorbis.FIELD_TITLE, "Teardrop"))
	require.NoError(t, vc.Add(flacvorbis.FIELD_ARTIST, "Massive Attack"))
	require.NoError(t, vc.Add(flacvorbis.FIELD_ALBUM, "Mezzanine"))

	blocks := []goflac.MetaDataBlock{
		{Type: goflac.StreamInfo, Data: si.Bytes()},
		vc.Marshal(),
		{Type: goflac.Padding, Data: make([]byte, 32)},
	}

	out := []byte("fLaC")
	for i := range blocks {
		out = append(out, blocks[i].Marshal(i == len(blocks)-1)...)
	}
	return out
}

func writeTemp(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

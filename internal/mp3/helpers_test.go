package mp3

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	binutil "github.com/simonhull/tagscan/internal/binary"
	"github.com/simonhull/tagscan/internal/types"
)

// mpeg1Layer3 is an MPEG1 Layer III header: 128 kbps, 44100 Hz, stereo.
var mpeg1Layer3 = []byte{0xFF, 0xFB, 0x90, 0x00}

type testFrame struct {
	id    string
	body  []byte
	flags uint16
}

// buildTag writes an ID3v2 tag of the given major version around frames,
// followed by padding bytes of zeros.
func buildTag(t *testing.T, version byte, padding int, frames ...testFrame) []byte {
	t.Helper()

	var body bytes.Buffer
	fw := binutil.NewSafeWriter(&body)
	for _, f := range frames {
		require.NoError(t, fw.WriteString(f.id))
		size := uint32(len(f.body))
		switch version {
		case 2:
			require.NoError(t, fw.WriteUint24(size))
		case 4:
			require.NoError(t, fw.WriteSynchsafe(size))
			require.NoError(t, binutil.Write[uint16](fw, f.flags))
		default:
			require.NoError(t, binutil.Write[uint32](fw, size))
			require.NoError(t, binutil.Write[uint16](fw, f.flags))
		}
		require.NoError(t, fw.WriteBytes(f.body))
	}
	require.NoError(t, fw.WriteBytes(make([]byte, padding)))

	return wrapTag(t, version, 0, body.Bytes())
}

// wrapTag prepends a tag header declaring len(body) bytes.
func wrapTag(t *testing.T, version, flags byte, body []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	sw := binutil.NewSafeWriter(&buf)
	require.NoError(t, sw.WriteString("ID3"))
	require.NoError(t, sw.WriteBytes([]byte{version, 0, flags}))
	require.NoError(t, sw.WriteSynchsafe(uint32(len(body))))
	require.NoError(t, sw.WriteBytes(body))
	return buf.Bytes()
}

func textBody(encoding byte, text []byte) []byte {
	return append([]byte{encoding}, text...)
}

func apicBody(mime string, pictureType byte, image []byte) []byte {
	b := []byte{0}
	b = append(b, mime...)
	b = append(b, 0, pictureType)
	b = append(b, "desc"...)
	b = append(b, 0)
	return append(b, image...)
}

// id3v1Trailer builds a 128-byte ID3v1 tag.
func id3v1Trailer(title, artist, album string) []byte {
	tag := make([]byte, id3v1Size)
	copy(tag, "TAG")
	copy(tag[3:33], title)
	copy(tag[33:63], artist)
	copy(tag[63:93], album)
	return tag
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func testConfig(t *testing.T) types.Config {
	return types.Config{
		Logger: zaptest.NewLogger(t),
		Path:   t.Name(),
		Limits: types.DefaultLimits(),
	}
}

func parse(t *testing.T, data []byte) *types.Record {
	t.Helper()
	rec := &types.Record{}
	(&parser{}).Parse(data, rec, testConfig(t))
	return rec
}

package mp3

import (
	binutil "github.com/simonhull/tagscan/internal/binary"
	"github.com/simonhull/tagscan/internal/textenc"
	"github.com/simonhull/tagscan/internal/types"
)

const id3v1Size = 128

// id3v1Fields are the fixed 30-byte slots of the trailer.
var id3v1Fields = [...]struct {
	field      types.Field
	start, end int
}{
	{types.FieldTitle, 3, 33},
	{types.FieldArtist, 33, 63},
	{types.FieldAlbum, 63, 93},
}

// parseID3v1 fills still-unset text fields from a trailing ID3v1 tag.
func parseID3v1(sr *binutil.SafeReader, rec *types.Record) bool {
	tag, err := sr.Bytes(sr.Len()-id3v1Size, id3v1Size, "ID3v1 tag")
	if err != nil || string(tag[0:3]) != "TAG" {
		return false
	}

	for _, f := range id3v1Fields {
		if rec.Has(f.field) {
			continue
		}
		if text, ok := textenc.DecodeLatin1(tag[f.start:f.end]); ok {
			rec.Fill(f.field, text)
		}
	}
	return true
}

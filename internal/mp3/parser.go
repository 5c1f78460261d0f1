// Package mp3 decodes ID3v2 tags, MPEG frame headers and ID3v1 trailers.
package mp3

import (
	"go.uber.org/zap"

	binutil "github.com/simonhull/tagscan/internal/binary"
	"github.com/simonhull/tagscan/internal/registry"
	"github.com/simonhull/tagscan/internal/types"
)

// parser implements the registry.FormatParser interface
type parser struct{}

// Parse runs the MP3 pipeline: ID3v2 frames, then the first MPEG frame
// header after the tag, then ID3v1 for any text still missing.
func (p *parser) Parse(data []byte, rec *types.Record, cfg types.Config) {
	sr := binutil.NewSafeReader(data, cfg.Path)
	log := cfg.Log().With(zap.String("parser", "mp3"))

	scanStart := 0
	if header, ok := parseID3v2Header(sr); ok {
		scanStart = header.End()
		log.Debug("found ID3v2 tag",
			zap.Uint8("version", header.Version),
			zap.Uint32("size", header.Size))
		parseID3v2(sr, header, rec, cfg, log)
	}

	if parseTechnicalInfo(sr, scanStart, rec) {
		log.Debug("found MPEG frame",
			zap.String("codec", rec.Audio.Codec),
			zap.Int("sample_rate", rec.Audio.SampleRate),
			zap.Int("bitrate", rec.Audio.Bitrate))
	}

	if rec.NeedsText() && len(data) >= id3v1Size {
		if parseID3v1(sr, rec) {
			log.Debug("read ID3v1 trailer")
		}
	}
}

// init registers the MP3 parser. It also handles buffers with no
// recognized signature.
func init() {
	p := &parser{}
	registry.Register(types.FormatMP3, p)
	registry.RegisterFallback(p)
}

// Package tagscan reads title, artist, album, cover art and stream
// properties from in-memory MP3 and FLAC files.
//
// The decoder works on a byte slice that holds a whole file (or at least
// its head and, for ID3v1, its tail). It never performs I/O of its own,
// never fails and never panics: anything it cannot read is simply absent
// from the result.
//
// # Quick Start
//
//	rec := tagscan.Decode(data)
//	fmt.Printf("%s - %s\n", rec.Artist, rec.Title)
//	fmt.Println(rec.Audio) // "MP3 44.1kHz 16-bit stereo 320kbps"
//
// Reading from disk:
//
//	rec, err := tagscan.Open("song.flac")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Supported Formats
//
//   - MP3: ID3v2.2, v2.3 and v2.4 text and picture frames, the first MPEG
//     audio frame header, and an ID3v1 trailer for anything still missing
//   - FLAC: STREAMINFO, VORBIS_COMMENT and PICTURE metadata blocks
//
// Buffers with no recognized signature go through the MP3 pipeline, so a
// bare ID3v1 trailer or an MPEG stream with leading junk still decodes.
//
// # Precedence
//
// Each text field keeps the first non-empty value found: ID3v2 frames in
// tag order, then ID3v1. Duplicate Vorbis comments behave the same way.
// For the cover, the first front cover (picture type 3) wins; without
// one, the first picture found is kept.
//
// # Limits
//
// Text payloads are truncated to 16 KiB before decoding and pictures
// larger than 4 MiB are dropped. Both are configurable:
//
//	rec := tagscan.Decode(data,
//	    tagscan.WithMaxTextBytes(1024),
//	    tagscan.WithMaxCoverBytes(512*1024),
//	)
//
// # Batches
//
// DecodeBatch and OpenMany decode in parallel and keep input order:
//
//	recs := tagscan.DecodeBatch([][]byte{mp3Data, garbage, flacData})
//	// len(recs) == 3; recs[1] is an empty record
//
// # Warnings
//
// Truncated or malformed structures never abort a decode. They are
// recorded in Record.Warnings, and WithStrictParsing turns them into a
// *CorruptedFileError for Open and OpenMany:
//
//	for _, w := range rec.Warnings {
//		log.Printf("warning: %s", w)
//	}
package tagscan

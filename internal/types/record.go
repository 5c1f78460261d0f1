// Package types provides the data structures shared by the format parsers.
//
// Record is the single output of a decode call. Parsers receive it by
// pointer and may only add to it: text fields keep the first non-empty
// value written, and the cover follows KeepNewPicture.
package types

import (
	"encoding/json"
	"strings"
)

// Field names one of the three descriptive text fields.
type Field int

const (
	FieldTitle Field = iota
	FieldArtist
	FieldAlbum
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldArtist:
		return "artist"
	case FieldAlbum:
		return "album"
	default:
		return "unknown"
	}
}

// FieldForKey maps a tag key (TITLE, ARTIST, ALBUM) to its field.
// Only ASCII letters are case-folded.
func FieldForKey(key string) (Field, bool) {
	switch asciiUpper(key) {
	case "TITLE":
		return FieldTitle, true
	case "ARTIST":
		return FieldArtist, true
	case "ALBUM":
		return FieldAlbum, true
	}
	return 0, false
}

func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// Record holds everything extracted from one buffer.
// Zero values mean "not found".
type Record struct {
	Cover    *Picture
	Title    string
	Artist   string
	Album    string
	Warnings []Warning
	Audio    AudioInfo
	Format   Format
}

func (r *Record) field(f Field) *string {
	switch f {
	case FieldTitle:
		return &r.Title
	case FieldArtist:
		return &r.Artist
	case FieldAlbum:
		return &r.Album
	default:
		return nil
	}
}

// Fill stores value in the field if the field is unset and value is
// non-empty. It reports whether the value was stored.
func (r *Record) Fill(f Field, value string) bool {
	dst := r.field(f)
	if dst == nil || *dst != "" || value == "" {
		return false
	}
	*dst = value
	return true
}

// Has reports whether the field already holds a value.
func (r *Record) Has(f Field) bool {
	dst := r.field(f)
	return dst != nil && *dst != ""
}

// NeedsText reports whether any of title, artist or album is unset.
func (r *Record) NeedsText() bool {
	return r.Title == "" || r.Artist == "" || r.Album == ""
}

// KeepNewPicture decides whether a newly found picture replaces the held
// one. The first front cover beats everything; otherwise the first
// picture found stays.
func KeepNewPicture(currentType, newType ArtworkType, hasCurrent bool) bool {
	if !hasCurrent {
		return true
	}
	return currentType != ArtworkFrontCover && newType == ArtworkFrontCover
}

// OfferPicture stores p as the cover when KeepNewPicture allows it.
func (r *Record) OfferPicture(p Picture) bool {
	var current ArtworkType
	if r.Cover != nil {
		current = r.Cover.Type
	}
	if !KeepNewPicture(current, p.Type, r.Cover != nil) {
		return false
	}
	r.Cover = &p
	return true
}

// IsEmpty reports whether nothing at all was extracted.
func (r *Record) IsEmpty() bool {
	return r.Title == "" && r.Artist == "" && r.Album == "" &&
		r.Cover == nil && r.Audio == (AudioInfo{})
}

// Warn appends a non-fatal warning.
func (r *Record) Warn(stage, message string, offset int64) {
	r.Warnings = append(r.Warnings, Warning{
		Stage:   stage,
		Message: message,
		Offset:  offset,
	})
}

type recordJSON struct {
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
	Album      string `json:"album,omitempty"`
	CoverMIME  string `json:"coverMime,omitempty"`
	CoverData  []byte `json:"coverData,omitempty"`
	CoverType  *uint8 `json:"coverType,omitempty"`
	SampleRate int    `json:"sampleRate,omitempty"`
	BitDepth   int    `json:"bitDepth,omitempty"`
	Bitrate    int    `json:"bitrate,omitempty"`
	Channels   int    `json:"channels,omitempty"`
}

// MarshalJSON emits the flat wire form consumed by host bindings.
// Absent fields are omitted; coverData is base64.
func (r *Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		Title:      r.Title,
		Artist:     r.Artist,
		Album:      r.Album,
		SampleRate: r.Audio.SampleRate,
		BitDepth:   r.Audio.BitDepth,
		Bitrate:    r.Audio.Bitrate,
		Channels:   r.Audio.Channels,
	}
	if r.Cover != nil {
		t := uint8(r.Cover.Type)
		out.CoverMIME = r.Cover.MIMEType
		out.CoverData = r.Cover.Data
		out.CoverType = &t
	}
	return json.Marshal(out)
}

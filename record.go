package tagscan

import (
	"github.com/simonhull/tagscan/internal/types"
)

// Record is an alias to types.Record.
// Re-exporting from internal/types to maintain public API.
type Record = types.Record

// Field is an alias to types.Field.
type Field = types.Field

// Re-export the text field constants.
const (
	FieldTitle  = types.FieldTitle
	FieldArtist = types.FieldArtist
	FieldAlbum  = types.FieldAlbum
)

// Limits is an alias to types.Limits.
// Re-exporting from internal/types to maintain public API.
type Limits = types.Limits

// Default limits applied when none are given.
const (
	DefaultMaxTextBytes  = types.DefaultMaxTextBytes
	DefaultMaxCoverBytes = types.DefaultMaxCoverBytes
)

// DefaultLimits returns 16 KiB for text and 4 MiB for covers.
func DefaultLimits() Limits {
	return types.DefaultLimits()
}

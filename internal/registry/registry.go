// Package registry maps detected formats to the parsers that decode them.
package registry

import (
	"github.com/simonhull/tagscan/internal/types"
)

// FormatParser is the interface all format parsers implement.
type FormatParser interface {
	// Parse extracts whatever it can from data into rec.
	// It never fails: damaged structures become absent fields and warnings.
	Parse(data []byte, rec *types.Record, cfg types.Config)
}

// parsers maps formats to their parsers. It is written only from init
// functions, so lookups need no locking.
var parsers = make(map[types.Format]FormatParser)

// fallback handles buffers whose format has no registered parser.
var fallback FormatParser

// Register registers a parser for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, parser FormatParser) {
	parsers[format] = parser
}

// RegisterFallback sets the parser used for unrecognized buffers.
func RegisterFallback(parser FormatParser) {
	fallback = parser
}

// Lookup returns the parser for format, or the fallback parser when none
// is registered. It returns nil only if neither exists.
func Lookup(format types.Format) FormatParser {
	if p, ok := parsers[format]; ok {
		return p
	}
	return fallback
}

package types

import "go.uber.org/zap"

const (
	// DefaultMaxTextBytes caps a single text payload before decoding.
	DefaultMaxTextBytes = 16 * 1024
	// DefaultMaxCoverBytes caps the size of an accepted embedded picture.
	DefaultMaxCoverBytes = 4 * 1024 * 1024
)

// Limits bounds the work done on untrusted buffers.
// Text longer than MaxTextBytes is truncated; pictures larger than
// MaxCoverBytes are rejected. A zero limit keeps no text or no pictures.
type Limits struct {
	MaxTextBytes  int
	MaxCoverBytes int
}

// DefaultLimits returns the limits used when a caller sets none.
func DefaultLimits() Limits {
	return Limits{
		MaxTextBytes:  DefaultMaxTextBytes,
		MaxCoverBytes: DefaultMaxCoverBytes,
	}
}

// Config is what every format parser receives for one decode call.
type Config struct {
	Logger *zap.Logger
	Path   string // label for errors and log fields; may be empty
	Limits Limits
}

// Log returns the configured logger, or a no-op logger.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

package tagscan

import (
	"go.uber.org/zap"
)

// Option configures a decode call.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	rec, err := tagscan.Open("song.flac",
//	    tagscan.WithMaxCoverBytes(1<<20),
//	    tagscan.WithStrictParsing(),
//	)
type Option func(*decodeOptions)

// decodeOptions holds configuration for decoding buffers.
type decodeOptions struct {
	logger         *zap.Logger
	limits         Limits
	strictParsing  bool // Open fails on any warning
	ignoreWarnings bool // Drop all warnings from the record
}

// defaultOptions returns the default configuration.
func defaultOptions() *decodeOptions {
	return &decodeOptions{
		logger: zap.NewNop(),
		limits: DefaultLimits(),
	}
}

func newOptions(opts []Option) *decodeOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMaxTextBytes caps every text payload before it is decoded.
// Longer payloads are truncated, not rejected, so zero truncates every
// payload to nothing. Without this option the limit is 16 KiB.
func WithMaxTextBytes(n int) Option {
	return func(o *decodeOptions) {
		o.limits.MaxTextBytes = n
	}
}

// WithMaxCoverBytes sets the largest embedded picture that is kept.
// Larger pictures are dropped whole. Zero drops every picture. Without
// this option the limit is 4 MiB.
func WithMaxCoverBytes(n int) Option {
	return func(o *decodeOptions) {
		o.limits.MaxCoverBytes = n
	}
}

// WithLimits sets both limits at once. Zero fields are used as given,
// not replaced by the defaults.
func WithLimits(l Limits) Option {
	return func(o *decodeOptions) {
		o.limits = l
	}
}

// WithLogger sends decoder diagnostics to logger.
//
// Walkers log skipped frames, rejected pictures and truncated structures
// at debug level. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *decodeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrictParsing makes Open and OpenMany fail when any warning was
// collected.
//
// By default, tagscan keeps whatever it could read from a damaged file
// and reports the damage in Record.Warnings. With strict parsing the
// first warning is returned as a *CorruptedFileError instead.
//
// Decode and the batch functions never fail and ignore this option.
func WithStrictParsing() Option {
	return func(o *decodeOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Use this when only the extracted values matter. It takes precedence
// over WithStrictParsing.
//
// Example:
//
//	rec := tagscan.Decode(data, tagscan.WithIgnoreWarnings())
//	// rec.Warnings will always be empty
func WithIgnoreWarnings() Option {
	return func(o *decodeOptions) {
		o.ignoreWarnings = true
	}
}

package tagscan

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/simonhull/tagscan/internal/flac" // Register FLAC parser
	_ "github.com/simonhull/tagscan/internal/mp3"  // Register MP3 parser
	"github.com/simonhull/tagscan/internal/registry"
	"github.com/simonhull/tagscan/internal/types"
)

// bufferLabel names in-memory inputs in errors and log fields.
const bufferLabel = "buffer"

// Decode extracts metadata from an in-memory MP3 or FLAC file.
//
// Decode never fails and never returns nil. Fields that could not be
// found or decoded are left at their zero value, and structural damage
// is described in Record.Warnings.
//
// Example:
//
//	rec := tagscan.Decode(data)
//	fmt.Printf("%s - %s (%s)\n", rec.Artist, rec.Title, rec.Audio)
func Decode(data []byte, opts ...Option) *Record {
	return decode(data, bufferLabel, newOptions(opts))
}

// DecodeWithLimits is Decode with explicit text and cover limits.
// Limits are used as given: a cover limit of 0 drops every picture.
func DecodeWithLimits(data []byte, maxTextBytes, maxCoverBytes int) *Record {
	return Decode(data, WithLimits(Limits{
		MaxTextBytes:  maxTextBytes,
		MaxCoverBytes: maxCoverBytes,
	}))
}

// DecodeBatch decodes every buffer independently.
//
// The result has one entry per input, in input order. A nil buffer
// yields a nil record at its position; any other buffer, including
// garbage, yields a record.
func DecodeBatch(buffers [][]byte, opts ...Option) []*Record {
	records, _ := DecodeBatchContext(context.Background(), buffers, opts...) //nolint:errcheck // Background is never cancelled
	return records
}

// DecodeBatchContext is DecodeBatch with cancellation.
//
// Buffers are decoded in parallel using up to runtime.NumCPU() goroutines.
// Once ctx is done no further buffers are started; their records stay nil
// and ctx.Err() is returned along with the records decoded so far.
func DecodeBatchContext(ctx context.Context, buffers [][]byte, opts ...Option) ([]*Record, error) {
	o := newOptions(opts)
	records := make([]*Record, len(buffers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	for i, data := range buffers {
		if gctx.Err() != nil {
			break
		}
		if data == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = decode(data, bufferLabel+"["+strconv.Itoa(i)+"]", o)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return records, err
	}
	return records, ctx.Err()
}

// decode runs the parser for the detected format over data.
// A parser panic is turned into a warning on an otherwise empty record.
func decode(data []byte, path string, o *decodeOptions) (rec *Record) {
	format := types.DetectFormat(data)
	rec = &Record{Format: format}

	cfg := types.Config{
		Logger: o.logger,
		Path:   path,
		Limits: o.limits,
	}

	defer func() {
		if x := recover(); x != nil {
			o.logger.Error("decoder panic",
				zap.String("path", path),
				zap.Stringer("format", format),
				zap.Any("panic", x))
			*rec = Record{Format: format}
			rec.Warn("decode", fmt.Sprint(x), 0)
		}
		if o.ignoreWarnings {
			rec.Warnings = nil
		}
	}()

	parser := registry.Lookup(format)
	if parser == nil {
		return rec
	}
	parser.Parse(data, rec, cfg)

	o.logger.Debug("decoded",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Bool("empty", rec.IsEmpty()),
		zap.Int("warnings", len(rec.Warnings)))
	return rec
}

package tagscan

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Open reads an audio file and decodes its metadata.
//
// The whole file is read into memory and handed to the same decoder as
// Decode. Damaged files still return a record with warnings unless
// WithStrictParsing is given, in which case the first warning is
// returned as a *CorruptedFileError.
//
// Example:
//
//	rec, err := tagscan.Open("song.flac")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", rec.Artist, rec.Title)
func Open(path string, opts ...Option) (*Record, error) {
	return open(path, newOptions(opts))
}

// OpenContext is Open with a cancellation check before any I/O.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

func open(path string, o *decodeOptions) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	rec := decode(data, path, o)

	if o.strictParsing && len(rec.Warnings) > 0 {
		w := rec.Warnings[0]
		return nil, &CorruptedFileError{
			Path:   path,
			Offset: w.Offset,
			Reason: fmt.Sprintf("strict parsing failed: %s: %s", w.Stage, w.Message),
		}
	}

	return rec, nil
}

// OpenMany opens multiple audio files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to open, or ctx is cancelled, OpenMany returns the
// first error and no records.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	recs, err := tagscan.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, rec := range recs {
//		fmt.Printf("%s: %s - %s\n", paths[i], rec.Artist, rec.Title)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*Record, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	o := newOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Record, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rec, err := open(path, o)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

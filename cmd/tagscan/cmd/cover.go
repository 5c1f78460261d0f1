package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simonhull/tagscan"
)

func newCoverCmd(a *app) *cobra.Command {
	var (
		output  string
		maxSize int
	)

	coverCmd := &cobra.Command{
		Use:   "cover <file>",
		Short: "Extract the embedded cover art",
		Long: `Write the cover picture selected while decoding <file>.

Without -o the picture is written next to the audio file, named after it
with the extension of the picture's format. Use "-o -" for stdout.
--max-size rescales the picture to fit a square of that many pixels and
always writes JPEG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCover(cmd, args[0], output, maxSize)
		},
	}

	coverCmd.Flags().StringVarP(&output, "output", "o", "", "output path, or - for stdout")
	coverCmd.Flags().IntVar(&maxSize, "max-size", 0, "rescale to fit within NxN pixels (0 keeps the original)")

	return coverCmd
}

func (a *app) runCover(cmd *cobra.Command, path, output string, maxSize int) error {
	rec, err := tagscan.OpenContext(cmd.Context(), path, a.options()...)
	if err != nil {
		return err
	}
	if rec.Cover == nil {
		return fmt.Errorf("%s: no cover art", path)
	}

	data, ext := rec.Cover.Data, rec.Cover.Extension()
	if maxSize > 0 {
		data, err = rec.Cover.Thumbnail(maxSize, maxSize)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		ext = ".jpg"
	}

	if output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ext
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write cover: %w", err)
	}

	a.logger.Debug("wrote cover",
		zap.String("path", output),
		zap.Stringer("cover", rec.Cover),
		zap.Int("bytes", len(data)))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: wrote %s (%s)\n", path, output, rec.Cover)
	return nil
}

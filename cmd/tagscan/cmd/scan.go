package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/tagscan"
)

func newScanCmd(a *app) *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "Print the tags of each file",
		Long: `Decode each file and print one line per file, or a JSON array with --json.

Damaged tags still produce a line; their warnings follow it indented.
Use --strict to fail instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runScan,
	}
	addScanFlags(scanCmd)
	return scanCmd
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "print results as JSON")
}

// scanResult is one element of the --json output.
type scanResult struct {
	Path     string          `json:"path"`
	Format   string          `json:"format"`
	Audio    string          `json:"audio,omitempty"`
	Record   *tagscan.Record `json:"record"`
	Warnings []string        `json:"warnings,omitempty"`
}

func (a *app) runScan(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	recs, err := tagscan.OpenMany(cmd.Context(), args, a.options()...)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), args, recs)
	}

	out := cmd.OutOrStdout()
	for i, rec := range recs {
		if unsupported(rec) {
			err := &tagscan.UnsupportedFormatError{Path: args[i], Reason: "no MP3 or FLAC signature"}
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		fmt.Fprintln(out, summary(args[i], rec))
		for _, w := range rec.Warnings {
			fmt.Fprintf(out, "  warning: %s\n", w)
		}
	}
	return nil
}

// unsupported reports records for which no decoder found anything.
func unsupported(rec *tagscan.Record) bool {
	return rec.Format == tagscan.FormatUnknown && rec.IsEmpty()
}

// summary renders a record as "path: Artist - Title [Album] (audio) cover: ...".
func summary(path string, rec *tagscan.Record) string {
	var b strings.Builder
	b.WriteString(path)
	b.WriteString(": ")

	artist, title := rec.Artist, rec.Title
	if artist == "" {
		artist = "Unknown Artist"
	}
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(&b, "%s - %s", artist, title)

	if rec.Album != "" {
		fmt.Fprintf(&b, " [%s]", rec.Album)
	}
	if rec.Audio.Known() {
		fmt.Fprintf(&b, " (%s)", rec.Audio)
	}
	if rec.Cover != nil {
		fmt.Fprintf(&b, " cover: %s", rec.Cover)
	}
	return b.String()
}

func writeJSON(w io.Writer, paths []string, recs []*tagscan.Record) error {
	results := make([]scanResult, len(recs))
	for i, rec := range recs {
		results[i] = scanResult{
			Path:   paths[i],
			Format: rec.Format.String(),
			Record: rec,
		}
		if rec.Audio.Known() {
			results[i].Audio = rec.Audio.String()
		}
		for _, warn := range rec.Warnings {
			results[i].Warnings = append(results[i].Warnings, warn.String())
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

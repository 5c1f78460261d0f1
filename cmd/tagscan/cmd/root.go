// Package cmd implements the tagscan command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/simonhull/tagscan"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	logger  *zap.Logger
	cfgFile string
}

// NewRootCmd builds the tagscan command tree.
// Running it without a subcommand behaves like "tagscan scan".
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "tagscan [files...]",
		Short: "Read tags, cover art and stream info from MP3 and FLAC files",
		Long: `Read the title, artist, album, embedded cover and stream properties
of MP3 and FLAC files.

Examples:
  # Print one line per file
  tagscan *.mp3 *.flac

  # Machine-readable output
  tagscan scan --json album/*.flac

  # Save the cover as a 300x300 thumbnail
  tagscan cover song.mp3 -o cover.jpg --max-size 300`,
		Args:              cobra.ArbitraryArgs,
		Version:           tagscan.GetVersionInfo().String(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		// Default behavior when no subcommand is provided: scan the arguments
		RunE: a.runScan,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file path (default .tagscan.yaml in $HOME or the working directory)")
	flags.Int("max-text-bytes", tagscan.DefaultMaxTextBytes, "truncate text payloads to this many bytes before decoding")
	flags.Int("max-cover-bytes", tagscan.DefaultMaxCoverBytes, "ignore embedded pictures larger than this many bytes (0 ignores all)")
	flags.Bool("strict", false, "fail on files with damaged tags instead of printing partial results")
	flags.String("log-level", "info", "set the logging level (e.g. debug, info, warn, error)")
	flags.String("log-style", "terminal", "set the logging output style (terminal, json, noop)")

	// Bind to viper
	a.mustBindPFlag("max_text_bytes", flags.Lookup("max-text-bytes"))
	a.mustBindPFlag("max_cover_bytes", flags.Lookup("max-cover-bytes"))
	a.mustBindPFlag("strict", flags.Lookup("strict"))
	a.mustBindPFlag("log.level", flags.Lookup("log-level"))
	a.mustBindPFlag("log.style", flags.Lookup("log-style"))

	addScanFlags(rootCmd)
	rootCmd.AddCommand(newScanCmd(a), newCoverCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func (a *app) mustBindPFlag(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

// setup reads the config file and environment, then builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}

	logger, err := newLogger(a.v.GetString("log.level"), a.v.GetString("log.style"))
	if err != nil {
		return err
	}
	a.logger = logger

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", zap.String("path", used))
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	_ = a.logger.Sync()
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		// Use config file from the flag.
		a.v.SetConfigFile(a.cfgFile)
	} else {
		// Search for config file in home directory and current directory
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".tagscan")
	}

	a.v.SetConfigType("yaml")
	a.v.SetEnvPrefix("TAGSCAN")                          // TAGSCAN_ prefix for env vars
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace . with _ in env var names
	a.v.AutomaticEnv()                                   // read in environment variables that match

	if err := a.v.ReadInConfig(); err != nil {
		// Only error if user explicitly specified a config file
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config file %s: %w", a.v.ConfigFileUsed(), err)
		}
	}
	return nil
}

// options turns the resolved configuration into decoder options.
func (a *app) options() []tagscan.Option {
	opts := []tagscan.Option{
		tagscan.WithLimits(tagscan.Limits{
			MaxTextBytes:  a.v.GetInt("max_text_bytes"),
			MaxCoverBytes: a.v.GetInt("max_cover_bytes"),
		}),
		tagscan.WithLogger(a.logger),
	}
	if a.v.GetBool("strict") {
		opts = append(opts, tagscan.WithStrictParsing())
	}
	return opts
}

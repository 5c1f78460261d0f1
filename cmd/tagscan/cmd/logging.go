package cmd

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger builds a logger writing to stderr.
// Styles: "terminal" (console encoder), "json", or "noop".
func newLogger(level, style string) (*zap.Logger, error) {
	if style == "noop" {
		return zap.NewNop(), nil
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch style {
	case "json":
		cfg = zap.NewProductionConfig()
	case "terminal", "":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("invalid log style %q (want terminal, json or noop)", style)
	}

	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

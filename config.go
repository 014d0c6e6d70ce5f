package octogen

import (
	"log/slog"

	"github.com/octogen/octogen/sink"
)

// Config holds the configuration for a generation run.
type Config struct {
	// RoutesDir is the directory of per-namespace route record files.
	RoutesDir string

	// OutDir is the directory where generated module files are written.
	// Ignored when Sink is set.
	OutDir string

	// Sink overrides the output destination. When nil, a filesystem sink
	// rooted at OutDir is used.
	Sink sink.OutputSink

	// Logger receives per-record progress and skip messages.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// applyDefaults fills unset fields on a copy of cfg.
func applyDefaults(cfg *Config) *Config {
	out := *cfg
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	if out.Sink == nil {
		out.Sink = sink.NewFilesystemSink(out.OutDir)
	}
	return &out
}

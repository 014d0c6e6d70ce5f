// Package gen implements the gen subcommand.
package gen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/octogen/octogen"
)

type Cmd struct {
	Routes  string `arg:"" help:"Directory of per-namespace route record files."`
	Out     string `help:"Output directory for generated modules." short:"o" default:"./generated"`
	Watch   bool   `help:"Watch the routes directory and regenerate on change." short:"w"`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

func (c *Cmd) Run() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	routesDir, err := filepath.Abs(c.Routes)
	if err != nil {
		return fmt.Errorf("resolve routes path: %w", err)
	}
	outDir, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	cfg := &octogen.Config{
		RoutesDir: routesDir,
		OutDir:    outDir,
		Logger:    logger,
	}

	ctx := context.Background()
	if err := generate(ctx, cfg); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}
	return watch(ctx, cfg)
}

func generate(ctx context.Context, cfg *octogen.Config) error {
	result, err := octogen.Generate(ctx, cfg)
	if err != nil {
		return err
	}

	for _, s := range result.Skipped {
		cfg.Logger.Debug("no method generated",
			slog.String("namespace", s.Namespace),
			slog.String("verb", s.Verb),
			slog.String("path", s.Path),
			slog.String("reason", s.Reason))
	}
	cfg.Logger.Info("generation complete",
		slog.Int("files", len(result.Files)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("malformed", len(result.Malformed)))
	return nil
}

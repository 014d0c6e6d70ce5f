// Package octogen generates documented Ruby client methods from
// machine-readable HTTP endpoint descriptions. The pipeline normalizes
// each route record, derives a method name and documentation for it, and
// assembles per-namespace module files.
package octogen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/octogen/octogen/ir"
	"github.com/octogen/octogen/loader"
	"github.com/octogen/octogen/namer"
	"github.com/octogen/octogen/normalizer"
	"github.com/octogen/octogen/render"
)

// SkippedRoute records a route that produced no method, with the reason.
type SkippedRoute struct {
	Namespace string
	Path      string
	Verb      string
	Reason    string
}

// Result reports what a generation run produced.
type Result struct {
	// Files are the output paths written, in namespace order.
	Files []string

	// Skipped lists routes with verbs that generate no method.
	Skipped []SkippedRoute

	// Malformed lists records rejected during loading.
	Malformed []loader.RecordError
}

// Generate runs the whole pipeline: load route records, normalize and
// name each one, order siblings by priority, render, and write one module
// file per namespace.
func Generate(ctx context.Context, cfg *Config) (*Result, error) {
	if cfg.RoutesDir == "" {
		return nil, fmt.Errorf("RoutesDir is required")
	}
	if cfg.OutDir == "" && cfg.Sink == nil {
		return nil, fmt.Errorf("OutDir or Sink is required")
	}
	cfg = applyDefaults(cfg)

	namespaces, malformed, err := loader.Load(cfg.RoutesDir)
	if err != nil {
		return nil, err
	}

	result := &Result{Malformed: malformed}
	for _, bad := range malformed {
		cfg.Logger.Warn("rejected malformed route record",
			slog.String("file", bad.File),
			slog.Int("index", bad.Index),
			slog.Any("error", bad.Err))
	}

	for _, ns := range namespaces {
		named, skipped := nameNamespace(cfg.Logger, ns)
		result.Skipped = append(result.Skipped, skipped...)
		if len(named) == 0 {
			continue
		}

		// Siblings are presented in priority order; ties keep input
		// order.
		sort.SliceStable(named, func(i, j int) bool {
			return named[i].endpoint.Priority.Less(named[j].endpoint.Priority)
		})

		stanzas := make([]string, len(named))
		for i, n := range named {
			stanzas[i] = render.Endpoint(n.endpoint, n.record)
		}

		path := ns.Name + ".rb"
		content := render.Module(ns.Name, named[0].record.DocumentationURL, stanzas)
		if err := cfg.Sink.WriteFile(ctx, path, []byte(content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		result.Files = append(result.Files, path)
		cfg.Logger.Info("generated namespace",
			slog.String("namespace", ns.Name),
			slog.Int("methods", len(named)))
	}

	return result, nil
}

type namedRoute struct {
	endpoint *ir.NamedEndpoint
	record   *ir.RouteRecord
}

// nameNamespace normalizes and names every record in a namespace.
// Unsupported verbs are skipped, not failed.
func nameNamespace(logger *slog.Logger, ns loader.Namespace) ([]namedRoute, []SkippedRoute) {
	var named []namedRoute
	var skipped []SkippedRoute

	for _, rec := range ns.Records {
		if err := normalizer.Normalize(rec); err != nil {
			// Records arrive fresh from the loader; a duplicate
			// normalization indicates caller misuse.
			logger.Warn("skipping record",
				slog.String("path", rec.OriginalPath.String()),
				slog.Any("error", err))
			continue
		}

		ep, err := namer.Name(rec, ns.Name)
		if err != nil {
			if errors.Is(err, namer.ErrUnsupportedVerb) {
				skipped = append(skipped, SkippedRoute{
					Namespace: ns.Name,
					Path:      rec.Path.String(),
					Verb:      rec.Verb,
					Reason:    "unsupported verb",
				})
				logger.Debug("skipping route with unsupported verb",
					slog.String("path", rec.Path.String()),
					slog.String("verb", rec.Verb))
				continue
			}
			logger.Warn("skipping unnameable route",
				slog.String("path", rec.Path.String()),
				slog.Any("error", err))
			continue
		}

		named = append(named, namedRoute{endpoint: ep, record: rec})
	}
	return named, skipped
}

// Endpoint runs the core pipeline for one record: normalization (when not
// already applied) followed by naming. It is the programmatic entry point
// for callers that render or persist output themselves.
func Endpoint(rec *ir.RouteRecord, directory string) (*ir.NamedEndpoint, error) {
	if !rec.Normalized() {
		if err := normalizer.Normalize(rec); err != nil {
			return nil, err
		}
	}
	return namer.Name(rec, directory)
}

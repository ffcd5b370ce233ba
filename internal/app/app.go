// Package app implements the application layer for cssmerge.
package app

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
	"go.trai.ch/cssmerge/internal/engine/assembler"
	"go.trai.ch/cssmerge/internal/engine/fetcher"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader      ports.ManifestLoader
	fetcher     *fetcher.Fetcher
	fileSink    ports.OutputSink
	previewSink ports.OutputSink
	logger      ports.Logger
	telemetry   ports.Telemetry
	toggles     domain.Toggles
	getwd       func() (string, error)
}

// New creates a new App instance. toggles are the process-level switches read at startup.
func New(
	loader ports.ManifestLoader,
	f *fetcher.Fetcher,
	fileSink ports.OutputSink,
	previewSink ports.OutputSink,
	log ports.Logger,
	telemetry ports.Telemetry,
	toggles domain.Toggles,
) *App {
	return &App{
		loader:      loader,
		fetcher:     f,
		fileSink:    fileSink,
		previewSink: previewSink,
		logger:      log,
		telemetry:   telemetry,
		toggles:     toggles,
		getwd:       os.Getwd,
	}
}

// WithWorkingDir pins the directory absolute output paths are re-rooted under.
// This is primarily used for testing.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// HideComments strips block comments from fetched sources.
	HideComments bool
	// DryRun prints merged bundles instead of writing them.
	DryRun bool
	// Concurrency bounds in-flight fetches per bundle. Zero means unbounded.
	Concurrency int
}

// Run merges every bundle found in paths. All manifests are loaded before any output
// is produced; a bad manifest aborts the run. Bundles are then processed one at a time
// and a bundle whose output cannot be written does not stop the others.
func (a *App) Run(ctx context.Context, paths []string, opts RunOptions) error {
	toggles := a.toggles.Merge(domain.Toggles{HideComments: opts.HideComments, DryRun: opts.DryRun})
	a.logger.Info("starting merge", "hide_comments", toggles.HideComments, "dry_run", toggles.DryRun)

	// 1. Discover and load all manifests
	manifests, err := a.loader.Discover(paths)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	bundles := make([]domain.BundleSpec, 0, len(manifests))
	for _, path := range manifests {
		bundle, err := a.loader.Load(path)
		if err != nil {
			return zerr.Wrap(err, "failed to load configuration")
		}
		bundles = append(bundles, bundle)
	}

	cwd, err := a.getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to resolve working directory")
	}

	f := a.fetcher
	if opts.Concurrency > 0 {
		f = f.WithLimit(opts.Concurrency)
	}

	// 2. Merge bundles sequentially
	var errs error
	for _, bundle := range bundles {
		if err := a.mergeBundle(ctx, f, bundle, cwd, toggles); err != nil {
			a.logger.Error(err)
			errs = errors.Join(errs, err)
		}
	}

	if errs != nil {
		return errors.Join(domain.ErrBundleFailed, errs)
	}
	return nil
}

func (a *App) mergeBundle(
	ctx context.Context,
	f *fetcher.Fetcher,
	bundle domain.BundleSpec,
	cwd string,
	toggles domain.Toggles,
) error {
	ctx, vertex := a.telemetry.Record(ctx, "bundle "+bundle.Path)

	output := assembler.ResolveOutputPath(cwd, bundle.Metadata.Output)
	entries := domain.Expand(bundle)
	a.logger.Info("merging bundle", "manifest", bundle.Path, "sources", len(entries), "output", output)

	fetched := f.FetchAll(ctx, entries)
	css := assembler.Assemble(bundle.Metadata, fetched, assembler.Options{HideComments: toggles.HideComments})

	sink := a.fileSink
	if toggles.DryRun {
		sink = a.previewSink
	}
	if err := sink.Write(ctx, output, css); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to write bundle"), "manifest", bundle.Path)
		vertex.Complete(err)
		return err
	}

	vertex.Complete(nil)
	a.logger.Info("bundle merged", "manifest", bundle.Path, "output", output, "failed_sources", countFailed(fetched))
	return nil
}

func countFailed(entries []domain.FetchedEntry) int {
	n := 0
	for _, e := range entries {
		if e.Failed {
			n++
		}
	}
	return n
}

// Close flushes the telemetry recording.
func (a *App) Close() error {
	return a.telemetry.Close()
}

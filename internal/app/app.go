// Package app implements the application layer for stylegen.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/stylegen/internal/engine/emitter"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver     ports.RootResolver
	configLoader ports.ConfigLoader
	scanner      ports.AssetScanner
	sampler      ports.ImageSampler
	writer       ports.OutputWriter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	resolver ports.RootResolver,
	loader ports.ConfigLoader,
	scanner ports.AssetScanner,
	sampler ports.ImageSampler,
	writer ports.OutputWriter,
	log ports.Logger,
) *App {
	return &App{
		resolver:     resolver,
		configLoader: loader,
		scanner:      scanner,
		sampler:      sampler,
		writer:       writer,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Path is the target directory to process.
	Path string
	// Root overrides package root discovery.
	Root string
	// ConfigPath overrides the default configuration location.
	ConfigPath string
	// KeepGoing skips unreadable images instead of aborting the run.
	KeepGoing bool
}

// Run generates the stylesheet and demo layout for the sprites below opts.Path.
// Nothing is written unless every asset was processed.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Resolve paths
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve target path"), "path", opts.Path)
	}

	root, err := a.resolver.Resolve(path, opts.Root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve package root")
	}

	a.logger.Info(fmt.Sprintf("Processing directory %s from package %s", path, root))

	// 2. Load configuration
	cfg, err := a.configLoader.Load(root, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 3. Scan candidates
	files, err := a.scanner.Scan(path)
	if err != nil {
		return err
	}

	// 4. Classify, sample and emit in scan order
	em := emitter.New(cfg, root)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "generation interrupted")
		}
		if err := a.process(em, file, opts.KeepGoing); err != nil {
			return err
		}
	}

	// 5. Write outputs
	if err := a.writer.Write(path, em.Outputs()...); err != nil {
		return zerr.Wrap(err, "failed to write outputs")
	}

	a.logger.Info(fmt.Sprintf("generated styles for %d of %d sprites", em.Count(), len(files)))
	return nil
}

func (a *App) process(em *emitter.Emitter, file string, keepGoing bool) error {
	asset := domain.NewAsset(file)
	if asset.Kind == domain.KindSkip {
		return nil
	}

	var info domain.BitmapInfo
	if asset.Kind.NeedsSample() {
		sampled, err := a.sampler.Sample(file)
		if err != nil {
			if keepGoing {
				a.logger.Warn(fmt.Sprintf("skipping %s: %v", file, err))
				return nil
			}
			return zerr.With(zerr.Wrap(err, "failed to sample sprite"), "asset", asset.Selector())
		}
		info = sampled
	}

	if err := em.Emit(asset, info); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to emit styles"), "asset", asset.Selector())
	}

	a.logger.Info(fmt.Sprintf("emitted %s %s", asset.Kind, asset.Selector()))
	return nil
}

// Package postprocess runs loudness normalization on a downloaded file and
// swaps the result in place of the original.
package postprocess

import (
	"context"
	"fmt"
	"path/filepath"

	"audionorm/internal/domain/logger"
	"audionorm/internal/file"
	"audionorm/internal/media"
	"audionorm/internal/normalize"
	"audionorm/internal/validation"
)

// Normalizer runs the external normalization routine from input into output.
type Normalizer interface {
	Normalize(ctx context.Context, input, output string, params normalize.ParameterSet) error
}

// Recorder keeps a ledger of runs. Optional.
type Recorder interface {
	Begin(filePath, stage string, params map[string]any) (int64, error)
	Finish(id int64, runErr error) error
}

// Options are the declarative and raw parameters of one post-processor instance.
type Options struct {
	Kwargs map[string]any
	PPA    string
	Stage  string
}

// Processor is the audio normalization post-processor.
type Processor struct {
	opts       Options
	normalizer Normalizer
	recorder   Recorder
}

// New returns a Processor. The stage is validated here so a bad one fails before any download work.
func New(opts Options, n Normalizer, r Recorder) (*Processor, error) {
	if n == nil {
		return nil, fmt.Errorf("normalizer is nil")
	}

	raw := opts.Stage
	if raw == "" {
		if when, ok := opts.Kwargs[normalize.StageKey].(string); ok {
			raw = when
		}
	}
	stage, err := validation.ValidateStage(raw)
	if err != nil {
		return nil, &normalize.ConfigError{Key: normalize.StageKey, Value: raw, Err: err}
	}
	opts.Stage = stage

	return &Processor{opts: opts, normalizer: n, recorder: r}, nil
}

// Stage returns the host stage this processor runs at.
func (p *Processor) Stage() string {
	return p.opts.Stage
}

// Resolve computes the parameter set for an item without running anything.
func (p *Processor) Resolve(info media.Info) (normalize.ParameterSet, error) {
	facts := info.Facts()
	logger.Pl.D(2, "Media facts: %+v", facts)
	if facts.AudioCodec != "" {
		if _, mapped := normalize.EncoderFor(facts.AudioCodec); !mapped {
			logger.Pl.W("No encoder known for codec %q, passing it through unchanged", facts.AudioCodec)
		}
	}
	return normalize.Resolve(p.opts.Kwargs, p.opts.PPA, facts)
}

// Run normalizes the item's file in place.
//
// The returned delete list is always empty and the info keeps its file path.
// Errors from the normalizer are returned as-is.
func (p *Processor) Run(ctx context.Context, info media.Info) ([]string, media.Info, error) {
	path := info.FilePath()
	if path == "" {
		logger.Pl.D(1, "No file path in info, skipping normalization")
		return nil, info, nil
	}

	params, err := p.Resolve(info)
	if err != nil {
		return nil, info, err
	}

	if _, err := validation.ValidateFile(path, false); err != nil {
		return nil, info, err
	}

	var runID int64
	if p.recorder != nil {
		ledgerPath, absErr := filepath.Abs(path)
		if absErr != nil {
			ledgerPath = path
		}
		if runID, err = p.recorder.Begin(ledgerPath, p.opts.Stage, params.Plain()); err != nil {
			logger.Pl.E("Failed to record run start for %q: %v", path, err)
			runID = 0
		}
	}

	runErr := p.normalizeFile(ctx, path, params)

	if p.recorder != nil && runID != 0 {
		if err := p.recorder.Finish(runID, runErr); err != nil {
			logger.Pl.E("Failed to record run result for %q: %v", path, err)
		}
	}
	return nil, info, runErr
}

// normalizeFile writes the normalized audio to a temp sibling and moves it over path on success.
func (p *Processor) normalizeFile(ctx context.Context, path string, params normalize.ParameterSet) error {
	logger.Pl.I("Starting loudness normalization: %s", path)

	tmp, err := file.CreateTempSibling(path)
	if err != nil {
		return err
	}
	defer file.RemoveIfExists(tmp)

	if err := p.normalizer.Normalize(ctx, path, tmp, params); err != nil {
		logger.Pl.E("Loudness normalization failed for %s: %v", path, err)
		return err
	}
	if params["dry_run"].Bool {
		logger.Pl.I("Dry run requested, leaving %s untouched", path)
		return nil
	}
	if err := file.CheckNonEmpty(tmp); err != nil {
		return err
	}
	if err := file.Replace(tmp, path); err != nil {
		return err
	}

	logger.Pl.S("Loudness normalization complete: %s", path)
	return nil
}

// Package splitter turns a parsed cue sheet into one ffmpeg invocation per
// track and reports the outcome of each.
package splitter

import (
	"context"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/toozej/cuesplit/internal/cuesheet"
	"github.com/toozej/cuesplit/internal/ffmpeg"
	"github.com/toozej/cuesplit/internal/types"
)

// DefaultOutputDir is used when Options.OutputDir is empty.
const DefaultOutputDir = "output"

// Options configures a split run.
type Options struct {
	OutputDir        string
	FFmpegPath       string
	CompressionLevel int
	SkipExisting     bool
}

// Splitter runs the extraction for a cue sheet, one track at a time.
type Splitter struct {
	opts    Options
	locator types.BinaryLocator
	runner  types.Runner
	checker types.OutputChecker
	logger  *log.Logger
}

// NewSplitter creates a new splitter
func NewSplitter(opts Options, locator types.BinaryLocator, runner types.Runner, checker types.OutputChecker, logger *log.Logger) *Splitter {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	return &Splitter{
		opts:    opts,
		locator: locator,
		runner:  runner,
		checker: checker,
		logger:  logger,
	}
}

// Split extracts every track of the cue sheet at cuePath.
//
// A missing cue sheet, binary or audio file aborts before any track is
// attempted. Track failures are recorded in the result and never stop the
// remaining tracks; the caller decides success from the result.
func (s *Splitter) Split(ctx context.Context, cuePath string) (*types.SplitResult, error) {
	entry := s.logger.WithFields(log.Fields{
		"component": "splitter",
		"cue_file":  cuePath,
	})

	if _, err := os.Stat(cuePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("cue sheet %s: %w", cuePath, types.ErrNotFound)
		}
		return nil, fmt.Errorf("cue sheet %s: %w: %w", cuePath, types.ErrUnreadable, err)
	}

	binary, err := s.locator.Locate(s.opts.FFmpegPath)
	if err != nil {
		return nil, err
	}
	entry.WithField("binary", binary).Info("Using ffmpeg")

	if err := os.MkdirAll(s.opts.OutputDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", s.opts.OutputDir, err)
	}

	tracks, err := cuesheet.Parse(cuePath)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("cue sheet %s: %w", cuePath, types.ErrNoTracks)
	}

	audioFiles, err := s.checkSources(cuePath, tracks)
	if err != nil {
		return nil, err
	}

	entry.WithFields(log.Fields{
		"track_count": len(tracks),
		"audio_files": audioFiles,
		"output_dir":  s.opts.OutputDir,
	}).Info("Parsed cue sheet")

	result := &types.SplitResult{
		CueFile:    cuePath,
		AudioFiles: audioFiles,
		OutputDir:  s.opts.OutputDir,
		Binary:     binary,
		Total:      len(tracks),
	}

	outputs := OutputPaths(s.opts.OutputDir, tracks)
	for i, track := range tracks {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		job := ffmpeg.Job{
			Input:            SourcePath(cuePath, track),
			Output:           outputs[i],
			Track:            track,
			Number:           i + 1,
			Total:            len(tracks),
			CompressionLevel: s.opts.CompressionLevel,
		}
		result.AddOutcome(s.extract(ctx, binary, job))
	}

	entry.WithFields(log.Fields{
		"succeeded": result.Succeeded(),
		"skipped":   result.Skipped(),
		"failed":    result.Failed(),
		"total":     result.Total,
	}).Info("Split finished")

	return result, nil
}

// checkSources verifies that every distinct referenced audio file exists and
// returns their resolved paths in first-seen order.
func (s *Splitter) checkSources(cuePath string, tracks []types.TrackRecord) ([]string, error) {
	var audioFiles []string
	seen := make(map[string]bool)
	for _, track := range tracks {
		path := SourcePath(cuePath, track)
		if seen[path] {
			continue
		}
		seen[path] = true

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil, fmt.Errorf("audio file %s: %w", path, types.ErrNotFound)
		}
		audioFiles = append(audioFiles, path)
	}
	return audioFiles, nil
}

func (s *Splitter) extract(ctx context.Context, binary string, job ffmpeg.Job) types.TrackOutcome {
	outcome := types.TrackOutcome{
		Number:     job.Number,
		Track:      job.Track,
		OutputPath: job.Output,
	}

	entry := s.logger.WithFields(log.Fields{
		"component": "splitter",
		"track":     fmt.Sprintf("%d/%d", job.Number, job.Total),
		"performer": job.Track.Performer,
		"title":     job.Track.Title,
		"start":     types.FormatTimestamp(job.Track.StartTime),
	})

	if s.opts.SkipExisting && s.checker.Exists(job.Output) {
		outcome.Skipped = true
		entry.WithField("output", job.Output).Info("Output already exists, skipping")
		return outcome
	}

	entry.Info("Extracting track")
	if err := s.runner.Run(ctx, binary, job.Args()); err != nil {
		outcome.Err = &types.TrackExtractionError{
			Number:     job.Number,
			OutputPath: job.Output,
			TimedOut:   errors.Is(err, context.DeadlineExceeded),
			Err:        err,
		}
		entry.WithError(err).Error("Failed to extract track")
		return outcome
	}

	entry.WithField("output", job.Output).Info("Created track")
	return outcome
}

package types

import (
	"errors"
	"fmt"
)

// Whole-run errors. These abort a split before any track is attempted.
var (
	// ErrNotFound is returned when the cue sheet or a referenced audio file does not exist
	ErrNotFound = errors.New("file not found")

	// ErrUnreadable is returned when the cue sheet content cannot be read or decoded
	ErrUnreadable = errors.New("cue sheet unreadable")

	// ErrBinaryNotFound is returned when the media processor binary cannot be located
	ErrBinaryNotFound = errors.New("ffmpeg binary not found")

	// ErrNoTracks is returned when a cue sheet contains no TRACK directives
	ErrNoTracks = errors.New("no tracks found in cue sheet")
)

// TrackExtractionError is recorded when the media processor fails or times out
// for a single track. It never aborts the remaining tracks.
type TrackExtractionError struct {
	Number     int
	OutputPath string
	TimedOut   bool
	Err        error
}

func (e *TrackExtractionError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("track %02d: extraction to %s timed out: %v", e.Number, e.OutputPath, e.Err)
	}
	return fmt.Sprintf("track %02d: extraction to %s failed: %v", e.Number, e.OutputPath, e.Err)
}

func (e *TrackExtractionError) Unwrap() error {
	return e.Err
}

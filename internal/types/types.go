package types

import (
	"context"
	"fmt"
	"strconv"
)

// Runner defines the interface for invoking the external media processor
type Runner interface {
	Run(ctx context.Context, binary string, args []string) error
}

// BinaryLocator defines the interface for resolving the media processor binary
type BinaryLocator interface {
	Locate(override string) (string, error)
}

// OutputChecker defines the interface for inspecting already written track files
type OutputChecker interface {
	Exists(path string) bool
}

// Core data models

// TrackRecord represents one track parsed from a cue sheet.
//
// StartTime and EndTime are offsets in seconds into SourceFile. EndTime is
// only set by boundary inference; HasEndTime is false for the last track,
// which runs to the end of the source.
type TrackRecord struct {
	SourceFile string  `json:"source_file"`
	Title      string  `json:"title"`
	Performer  string  `json:"performer"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time,omitempty"`
	HasEndTime bool    `json:"has_end_time"`
}

// String returns a string representation of the track
func (t *TrackRecord) String() string {
	return fmt.Sprintf("%s - %s", t.Performer, t.Title)
}

// Duration returns the length of the track in seconds, or false when the
// track runs to the end of its source.
func (t *TrackRecord) Duration() (float64, bool) {
	if !t.HasEndTime {
		return 0, false
	}
	return t.EndTime - t.StartTime, true
}

// FormatSeconds renders an offset the way it is handed to the media processor.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// FormatTimestamp renders an offset as mm:ss.mmm for display.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(seconds*1000 + 0.5)
	minutes := totalMillis / 60000
	secs := (totalMillis % 60000) / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, secs, millis)
}

// Split result models

// TrackOutcome represents the result of extracting a single track
type TrackOutcome struct {
	Number     int         `json:"number"`
	Track      TrackRecord `json:"track"`
	OutputPath string      `json:"output_path"`
	Skipped    bool        `json:"skipped"`
	Err        error       `json:"-"`
}

// Succeeded reports whether the track was written or was already present
func (o *TrackOutcome) Succeeded() bool {
	return o.Err == nil
}

// SplitResult represents the aggregate result of splitting one cue sheet
type SplitResult struct {
	CueFile    string         `json:"cue_file"`
	AudioFiles []string       `json:"audio_files"`
	OutputDir  string         `json:"output_dir"`
	Binary     string         `json:"binary"`
	Total      int            `json:"total"`
	Outcomes   []TrackOutcome `json:"outcomes"`
}

// AddOutcome appends a track outcome to the result
func (r *SplitResult) AddOutcome(outcome TrackOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
}

// Succeeded returns the number of tracks that were written or skipped
func (r *SplitResult) Succeeded() int {
	n := 0
	for i := range r.Outcomes {
		if r.Outcomes[i].Succeeded() {
			n++
		}
	}
	return n
}

// Skipped returns the number of tracks left untouched because their output already existed
func (r *SplitResult) Skipped() int {
	n := 0
	for i := range r.Outcomes {
		if r.Outcomes[i].Skipped {
			n++
		}
	}
	return n
}

// Failed returns the number of tracks whose extraction failed
func (r *SplitResult) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// Success reports whether at least one track succeeded
func (r *SplitResult) Success() bool {
	return r.Succeeded() > 0
}

// String returns a one line summary of the result
func (r *SplitResult) String() string {
	return fmt.Sprintf("%d/%d tracks succeeded", r.Succeeded(), r.Total)
}

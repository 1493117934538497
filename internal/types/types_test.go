package types

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackRecord_String(t *testing.T) {
	track := TrackRecord{Title: "So What", Performer: "Miles Davis"}
	assert.Equal(t, "Miles Davis - So What", track.String())
}

func TestTrackRecord_Duration(t *testing.T) {
	tests := []struct {
		name       string
		track      TrackRecord
		expected   float64
		expectedOK bool
	}{
		{
			name:       "bounded track",
			track:      TrackRecord{StartTime: 10, EndTime: 70.5, HasEndTime: true},
			expected:   60.5,
			expectedOK: true,
		},
		{
			name:       "last track runs to end of source",
			track:      TrackRecord{StartTime: 210},
			expected:   0,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := tt.track.Duration()
			assert.Equal(t, tt.expectedOK, ok)
			assert.InDelta(t, tt.expected, d, 1e-9)
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{210, "210"},
		{210.5, "210.5"},
		{62.04, "62.04"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSeconds(tt.input))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "00:00.000"},
		{210, "03:30.000"},
		{62.5, "01:02.500"},
		{-3, "00:00.000"},
		{3600, "60:00.000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimestamp(tt.input))
		})
	}
}

func TestSplitResult_Counts(t *testing.T) {
	result := &SplitResult{Total: 4}
	result.AddOutcome(TrackOutcome{Number: 1})
	result.AddOutcome(TrackOutcome{Number: 2, Skipped: true})
	result.AddOutcome(TrackOutcome{Number: 3, Err: &TrackExtractionError{Number: 3, Err: errors.New("exit status 1")}})
	result.AddOutcome(TrackOutcome{Number: 4, Err: &TrackExtractionError{Number: 4, TimedOut: true, Err: context.DeadlineExceeded}})

	assert.Equal(t, 2, result.Succeeded())
	assert.Equal(t, 1, result.Skipped())
	assert.Equal(t, 2, result.Failed())
	assert.True(t, result.Success())
	assert.Equal(t, "2/4 tracks succeeded", result.String())
}

func TestSplitResult_AllFailed(t *testing.T) {
	result := &SplitResult{Total: 2}
	result.AddOutcome(TrackOutcome{Number: 1, Err: errors.New("boom")})
	result.AddOutcome(TrackOutcome{Number: 2, Err: errors.New("boom")})

	assert.Equal(t, 0, result.Succeeded())
	assert.Equal(t, 2, result.Failed())
	assert.False(t, result.Success())
}

func TestSplitResult_Empty(t *testing.T) {
	result := &SplitResult{}
	assert.False(t, result.Success())
	assert.Equal(t, 0, result.Failed())
}

func TestTrackExtractionError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &TrackExtractionError{Number: 3, OutputPath: "out/03 - A - B.flac", Err: cause}

	assert.Equal(t, "track 03: extraction to out/03 - A - B.flac failed: exit status 1", err.Error())
	assert.ErrorIs(t, err, cause)

	timeout := &TrackExtractionError{Number: 1, OutputPath: "x.flac", TimedOut: true, Err: context.DeadlineExceeded}
	assert.Contains(t, timeout.Error(), "timed out")
	assert.ErrorIs(t, timeout, context.DeadlineExceeded)

	var target *TrackExtractionError
	wrapped := fmt.Errorf("split: %w", err)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 3, target.Number)
}

func TestSentinelErrorsWrap(t *testing.T) {
	err := fmt.Errorf("cue sheet %s: %w", "album.cue", ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrBinaryNotFound)
}

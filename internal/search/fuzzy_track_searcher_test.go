package search

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toozej/cuesplit/internal/types"
)

func createTestSearcher() *FuzzyTrackSearcher {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewFuzzyTrackSearcher(logger)
}

func testTracks() []types.TrackRecord {
	return []types.TrackRecord{
		{Title: "So What", Performer: "Miles Davis"},
		{Title: "Freddie Freeloader", Performer: "Miles Davis"},
		{Title: "Blue in Green", Performer: "Miles Davis"},
		{Title: "All Blues", Performer: "Miles Davis"},
		{Title: "Flamenco Sketches", Performer: "Miles Davis"},
		{Title: "Giant Steps", Performer: "John Coltrane"},
	}
}

func TestFuzzyTrackSearcher_Search(t *testing.T) {
	searcher := createTestSearcher()

	tests := []struct {
		name          string
		query         string
		expectedFirst int
		expectedCount int
	}{
		{
			name:          "exact title",
			query:         "So What",
			expectedFirst: 1,
		},
		{
			name:          "case insensitive substring",
			query:         "blues",
			expectedFirst: 4,
		},
		{
			name:          "performer",
			query:         "coltrane",
			expectedFirst: 6,
			expectedCount: 1,
		},
		{
			name:          "no match",
			query:         "zzzz",
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := searcher.Search(testTracks(), tt.query)
			require.NoError(t, err)

			if tt.expectedCount > 0 || tt.expectedFirst == 0 {
				assert.Len(t, matches, tt.expectedCount)
			}
			if tt.expectedFirst > 0 {
				require.NotEmpty(t, matches)
				assert.Equal(t, tt.expectedFirst, matches[0].Number)
				assert.Equal(t, testTracks()[tt.expectedFirst-1], matches[0].Track)
			}
		})
	}
}

func TestFuzzyTrackSearcher_SearchEmptyQuery(t *testing.T) {
	matches, err := createTestSearcher().Search(testTracks(), "   ")
	assert.Error(t, err)
	assert.Nil(t, matches)
}

func TestFuzzyTrackSearcher_SortedByConfidence(t *testing.T) {
	matches, err := createTestSearcher().Search(testTracks(), "blue")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(matches), 2)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Confidence, matches[i].Confidence)
	}
}

func TestFuzzyTrackSearcher_calculateMatchConfidence(t *testing.T) {
	searcher := createTestSearcher()
	track := types.TrackRecord{Title: "Blue in Green", Performer: "Miles Davis"}

	tests := []struct {
		name  string
		query string
		min   float64
		max   float64
	}{
		{"exact title", "blue in green", 1.0, 1.0},
		{"exact full name", "Miles Davis - Blue in Green", 1.0, 1.0},
		{"title substring", "green", 0.8, 1.0},
		{"performer substring", "miles", 0.7, 0.9},
		{"scattered characters", "mdbg", 0.1, 0.7},
		{"no match", "xyz", 0.1, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confidence := searcher.calculateMatchConfidence(tt.query, track)
			assert.GreaterOrEqual(t, confidence, tt.min)
			assert.LessOrEqual(t, confidence, tt.max)
		})
	}
}

func TestTrackMatch_IsHighConfidence(t *testing.T) {
	assert.True(t, TrackMatch{Confidence: 0.8}.IsHighConfidence())
	assert.False(t, TrackMatch{Confidence: 0.79}.IsHighConfidence())
}

package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"

	"github.com/toozej/cuesplit/internal/types"
)

// FuzzyTrackSearcher implements fuzzy matching over parsed cue sheet tracks
type FuzzyTrackSearcher struct {
	logger *logrus.Logger
}

// NewFuzzyTrackSearcher creates a new fuzzy track searcher
func NewFuzzyTrackSearcher(logger *logrus.Logger) *FuzzyTrackSearcher {
	return &FuzzyTrackSearcher{
		logger: logger,
	}
}

// TrackMatch represents a search result with its confidence score
type TrackMatch struct {
	Number     int               `json:"number"`
	Track      types.TrackRecord `json:"track"`
	Score      int               `json:"score"`
	Confidence float64           `json:"confidence"`
}

// trackSource adapts a track list to fuzzy.Source, matching on the lower
// cased "performer - title"
type trackSource []types.TrackRecord

func (s trackSource) String(i int) string {
	return strings.ToLower(s[i].String())
}

func (s trackSource) Len() int {
	return len(s)
}

// Search returns the tracks whose "performer - title" matches query, best
// match first. Track numbers are the 1-based cue sheet positions.
func (f *FuzzyTrackSearcher) Search(tracks []types.TrackRecord, query string) ([]TrackMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	f.logger.WithFields(logrus.Fields{
		"query":       query,
		"track_count": len(tracks),
	}).Debug("Starting fuzzy track search")

	matches := fuzzy.FindFrom(strings.ToLower(query), trackSource(tracks))

	results := make([]TrackMatch, 0, len(matches))
	for _, m := range matches {
		track := tracks[m.Index]
		results = append(results, TrackMatch{
			Number:     m.Index + 1,
			Track:      track,
			Score:      m.Score,
			Confidence: f.calculateMatchConfidence(query, track),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		return results[i].Score > results[j].Score
	})

	f.logger.WithFields(logrus.Fields{
		"query":       query,
		"match_count": len(results),
	}).Debug("Finished fuzzy track search")

	return results, nil
}

// calculateMatchConfidence calculates a confidence score between 0.0 and 1.0
// for how well the track matches the search query
func (f *FuzzyTrackSearcher) calculateMatchConfidence(query string, track types.TrackRecord) float64 {
	normalizedQuery := strings.ToLower(strings.TrimSpace(query))
	title := strings.ToLower(strings.TrimSpace(track.Title))
	full := strings.ToLower(track.String())

	// Exact title or "performer - title" match gets perfect score
	if normalizedQuery == title || normalizedQuery == full {
		return 1.0
	}

	// Query contained in the title
	if strings.Contains(title, normalizedQuery) {
		ratio := float64(len(normalizedQuery)) / float64(len(title))
		return 0.8 + (ratio * 0.2) // Score between 0.8 and 1.0
	}

	// Query contained somewhere in performer or title
	if strings.Contains(full, normalizedQuery) {
		ratio := float64(len(normalizedQuery)) / float64(len(full))
		return 0.7 + (ratio * 0.2) // Score between 0.7 and 0.9
	}

	// Scattered character match; normalize to 0.1-0.7
	matches := fuzzy.Find(normalizedQuery, []string{full})
	if len(matches) > 0 {
		maxExpectedScore := float64(len(normalizedQuery) * 2)
		confidence := (float64(matches[0].Score) / maxExpectedScore) * 0.7
		if confidence > 0.7 {
			confidence = 0.7
		}
		if confidence < 0.1 {
			confidence = 0.1
		}
		return confidence
	}

	return 0.1
}

// IsHighConfidence returns true if the match confidence is at least 0.8
func (tm TrackMatch) IsHighConfidence() bool {
	return tm.Confidence >= 0.8
}

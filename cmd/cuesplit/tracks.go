// Package cmd provides the tracks command implementation for cuesplit.
package cmd

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/toozej/cuesplit/internal/cuesheet"
	"github.com/toozej/cuesplit/internal/search"
	"github.com/toozej/cuesplit/internal/splitter"
	"github.com/toozej/cuesplit/internal/types"
)

// newTracksCmd creates the tracks command for listing the tracks of a cue sheet.
func newTracksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracks <cue_file> [query]",
		Short: "List the tracks of a cue sheet",
		Long: `List the tracks parsed from a cue sheet with their offsets and output file names,
without running ffmpeg. An optional query filters the tracks using fuzzy matching
on "performer - title".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runTracks,
	}

	return cmd
}

// runTracks executes the tracks command.
func runTracks(cmd *cobra.Command, args []string) error {
	cuePath := args[0]

	tracks, err := cuesheet.Parse(cuePath)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"cue_file":    cuePath,
		"track_count": len(tracks),
	}).Debug("Parsed cue sheet")

	if len(args) < 2 {
		displayTracks(cmd.OutOrStdout(), tracks)
		return nil
	}

	query := strings.TrimSpace(args[1])
	searcher := search.NewFuzzyTrackSearcher(log.StandardLogger())
	matches, err := searcher.Search(tracks, query)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		log.WithField("query", query).Warn("No matching tracks found")
		return nil
	}

	displayTrackMatches(cmd.OutOrStdout(), matches, query)
	return nil
}

// formatRange renders a track's offsets as "start → end"
func formatRange(track types.TrackRecord) string {
	end := "end"
	if track.HasEndTime {
		end = types.FormatTimestamp(track.EndTime)
	}
	return fmt.Sprintf("%s → %s", types.FormatTimestamp(track.StartTime), end)
}

// displayTracks displays every track in cue sheet order
func displayTracks(w io.Writer, tracks []types.TrackRecord) {
	fmt.Fprintf(w, "\n💿 %d track(s):\n\n", len(tracks))
	for i, track := range tracks {
		fmt.Fprintf(w, "%02d. 🎵 %s\n", i+1, track.String())
		fmt.Fprintf(w, "    ⏱  %s\n", formatRange(track))
		fmt.Fprintf(w, "    📄 %s\n", splitter.OutputName(i+1, track))
	}
	fmt.Fprintln(w)
}

// displayTrackMatches displays the search results in a formatted way
func displayTrackMatches(w io.Writer, matches []search.TrackMatch, query string) {
	fmt.Fprintf(w, "\n🔍 Search Results for '%s':\n", query)
	fmt.Fprintf(w, "Found %d matching track(s):\n\n", len(matches))

	for _, m := range matches {
		fmt.Fprintf(w, "%02d. 🎵 %s (%.0f%%)\n", m.Number, m.Track.String(), m.Confidence*100)
		fmt.Fprintf(w, "    ⏱  %s\n", formatRange(m.Track))
		fmt.Fprintln(w)
	}
}

package splitter

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/toozej/cuesplit/internal/ffmpeg"
	"github.com/toozej/cuesplit/internal/types"
)

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SafeFilename replaces characters that are invalid in file names on common
// filesystems with an underscore.
func SafeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// OutputName returns the file name for the track at 1-based position number,
// in the form "NN - performer - title.flac".
func OutputName(number int, track types.TrackRecord) string {
	return fmt.Sprintf("%02d - %s - %s.%s",
		number, SafeFilename(track.Performer), SafeFilename(track.Title), ffmpeg.Extension)
}

// OutputPaths returns the output file path of every track, in order.
func OutputPaths(outputDir string, tracks []types.TrackRecord) []string {
	paths := make([]string, len(tracks))
	for i, track := range tracks {
		paths[i] = filepath.Join(outputDir, OutputName(i+1, track))
	}
	return paths
}

// SourcePath resolves a FILE directive against the cue sheet's directory.
func SourcePath(cuePath string, track types.TrackRecord) string {
	return filepath.Join(filepath.Dir(cuePath), track.SourceFile)
}

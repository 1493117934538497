package ffmpeg

import (
	"fmt"

	"github.com/toozej/cuesplit/internal/types"
)

// Codec and container written for every track.
const (
	Codec     = "flac"
	Extension = "flac"
)

// DefaultCompressionLevel is the FLAC compression level passed to ffmpeg.
const DefaultCompressionLevel = 8

// Job describes one track extraction.
type Job struct {
	Input            string
	Output           string
	Track            types.TrackRecord
	Number           int
	Total            int
	CompressionLevel int
}

// Args builds the ffmpeg argument list for the job. The end offset is only
// passed when the track has a positive inferred end; otherwise ffmpeg reads
// to the end of the input.
func (j Job) Args() []string {
	args := []string{
		"-i", j.Input,
		"-ss", types.FormatSeconds(j.Track.StartTime),
	}
	if j.Track.HasEndTime && j.Track.EndTime > 0 {
		args = append(args, "-to", types.FormatSeconds(j.Track.EndTime))
	}
	return append(args,
		"-c:a", Codec,
		"-compression_level", fmt.Sprint(j.CompressionLevel),
		"-metadata", "title="+j.Track.Title,
		"-metadata", "artist="+j.Track.Performer,
		"-metadata", fmt.Sprintf("track=%d/%d", j.Number, j.Total),
		"-y",
		j.Output,
	)
}

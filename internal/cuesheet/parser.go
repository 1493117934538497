// Package cuesheet parses cue sheets into ordered track records.
//
// Cue sheets are line-oriented sidecar files written by a wide range of
// ripping tools, usually without a declared charset. Parsing is best effort:
// unknown directives are skipped and missing fields fall back to defaults
// rather than producing errors.
package cuesheet

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/toozej/cuesplit/internal/types"
)

// FramesPerSecond is the cue sheet timing unit: INDEX offsets are mm:ss:ff
// where ff counts 1/75 second frames.
const FramesPerSecond = 75.0

// DefaultPerformer is used for tracks without a PERFORMER directive.
const DefaultPerformer = "Unknown Artist"

var (
	fileRe      = regexp.MustCompile(`FILE "(.*?)"`)
	titleRe     = regexp.MustCompile(`TITLE "(.*?)"`)
	performerRe = regexp.MustCompile(`PERFORMER "(.*?)"`)
	index01Re   = regexp.MustCompile(`INDEX 01 (\d+):(\d+):(\d+)`)
)

// directive binds a line prefix to the state transition it triggers.
type directive struct {
	prefix string
	apply  func(s *parseState, line string)
}

// directives are matched in order; the first prefix that matches wins.
var directives = []directive{
	{prefix: "REM", apply: func(*parseState, string) {}},
	{prefix: "FILE", apply: (*parseState).file},
	{prefix: "TRACK", apply: (*parseState).track},
	{prefix: "TITLE", apply: (*parseState).title},
	{prefix: "PERFORMER", apply: (*parseState).performer},
	{prefix: "INDEX 01", apply: (*parseState).index},
}

// parseState is local to a single parse and discarded once the finalized
// records have been returned.
type parseState struct {
	currentFile string
	inProgress  *types.TrackRecord
	tracks      []types.TrackRecord
}

func (s *parseState) file(line string) {
	if m := fileRe.FindStringSubmatch(line); m != nil {
		s.currentFile = m[1]
	}
}

func (s *parseState) track(string) {
	s.finalize()
	s.inProgress = &types.TrackRecord{
		SourceFile: s.currentFile,
		Title:      fmt.Sprintf("track_%02d", len(s.tracks)+1),
		Performer:  DefaultPerformer,
	}
}

func (s *parseState) title(line string) {
	if m := titleRe.FindStringSubmatch(line); m != nil && s.inProgress != nil {
		s.inProgress.Title = m[1]
	}
}

func (s *parseState) performer(line string) {
	if m := performerRe.FindStringSubmatch(line); m != nil && s.inProgress != nil {
		s.inProgress.Performer = m[1]
	}
}

func (s *parseState) index(line string) {
	m := index01Re.FindStringSubmatch(line)
	if m == nil || s.inProgress == nil {
		return
	}
	// \d+ always parses; only absurdly long digit runs can overflow.
	minutes, err1 := strconv.Atoi(m[1])
	seconds, err2 := strconv.Atoi(m[2])
	frames, err3 := strconv.Atoi(m[3])
	if err := errors.Join(err1, err2, err3); err != nil {
		log.WithError(err).WithField("line", line).Debug("Ignoring unparsable INDEX 01 offset")
		return
	}
	s.inProgress.StartTime = float64(minutes*60+seconds) + float64(frames)/FramesPerSecond
}

func (s *parseState) finalize() {
	if s.inProgress != nil {
		s.tracks = append(s.tracks, *s.inProgress)
		s.inProgress = nil
	}
}

// consume feeds one raw line through the directive table.
func (s *parseState) consume(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return
	}
	for _, d := range directives {
		if strings.HasPrefix(line, d.prefix) {
			d.apply(s, line)
			return
		}
	}
}

// result finalizes the last record and infers track boundaries: every track
// ends where the next one starts, the last one runs to the end of its source.
func (s *parseState) result() []types.TrackRecord {
	s.finalize()
	for i := 0; i < len(s.tracks)-1; i++ {
		s.tracks[i].EndTime = s.tracks[i+1].StartTime
		s.tracks[i].HasEndTime = true
	}
	return s.tracks
}

// Parse reads the cue sheet at path and returns its tracks in file order.
//
// It fails with types.ErrNotFound when path does not exist and with
// types.ErrUnreadable when the file cannot be read.
func Parse(path string) ([]types.TrackRecord, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the user supplied cue sheet
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cue sheet %s: %w", path, types.ErrNotFound)
		}
		return nil, fmt.Errorf("cue sheet %s: %w: %w", path, types.ErrUnreadable, err)
	}

	tracks, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("cue sheet %s: %w", path, err)
	}
	return tracks, nil
}

// ParseReader parses a cue sheet from r.
func ParseReader(r io.Reader) ([]types.TrackRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrUnreadable, err)
	}
	return ParseBytes(data)
}

// ParseBytes parses raw cue sheet content of unknown encoding.
func ParseBytes(data []byte) ([]types.TrackRecord, error) {
	text, charset, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"component": "cuesheet",
		"charset":   charset,
		"bytes":     len(data),
	}).Debug("Decoded cue sheet")

	return parseText(text), nil
}

func parseText(text string) []types.TrackRecord {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var s parseState
	for _, line := range strings.Split(text, "\n") {
		s.consume(line)
	}
	return s.result()
}

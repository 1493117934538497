// Package ffmpeg locates and drives the external ffmpeg binary that performs
// all audio decoding and encoding.
package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/toozej/cuesplit/internal/types"
)

// Locator resolves the ffmpeg binary, either from an explicit override or
// from a fixed list of conventional install locations followed by PATH.
type Locator struct {
	goos     string
	getenv   func(string) string
	stat     func(string) (os.FileInfo, error)
	lookPath func(string) (string, error)
	logger   *log.Entry
}

// NewLocator creates a Locator for the running platform.
func NewLocator() *Locator {
	return &Locator{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		stat:     os.Stat,
		lookPath: exec.LookPath,
		logger:   log.WithField("component", "ffmpeg_locator"),
	}
}

// ExecutableName returns the bare binary name resolved through PATH.
func (l *Locator) ExecutableName() string {
	if l.goos == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

// Candidates returns the install locations checked, in order, before PATH.
func (l *Locator) Candidates() []string {
	if l.goos != "windows" {
		return []string{
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/usr/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}

	systemDrive := l.getenv("SystemDrive")
	if systemDrive == "" {
		systemDrive = "C:"
	}
	roots := []string{
		l.getenv("ProgramFiles"),
		l.getenv("ProgramFiles(x86)"),
		systemDrive,
		l.getenv("USERPROFILE"),
	}

	var candidates []string
	for _, root := range roots {
		if root == "" {
			continue
		}
		candidates = append(candidates, filepath.Join(root, "ffmpeg", "bin", "ffmpeg.exe"))
	}
	return candidates
}

func (l *Locator) isFile(path string) bool {
	info, err := l.stat(path)
	return err == nil && !info.IsDir()
}

// Locate returns the path of the binary to run. A non-empty override must
// point at an existing file; otherwise the candidates and PATH are searched.
func (l *Locator) Locate(override string) (string, error) {
	if override != "" {
		if !l.isFile(override) {
			return "", fmt.Errorf("%w at %s", types.ErrBinaryNotFound, override)
		}
		l.logger.WithField("path", override).Debug("Using ffmpeg override")
		return override, nil
	}

	for _, candidate := range l.Candidates() {
		if l.isFile(candidate) {
			l.logger.WithField("path", candidate).Debug("Found ffmpeg in install location")
			return candidate, nil
		}
	}

	path, err := l.lookPath(l.ExecutableName())
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w in install locations or PATH; install ffmpeg or pass --ffmpeg", types.ErrBinaryNotFound)
		}
		return "", fmt.Errorf("%w: %w", types.ErrBinaryNotFound, err)
	}
	l.logger.WithField("path", path).Debug("Found ffmpeg on PATH")
	return path, nil
}

package outputs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// flacMarker opens every native FLAC stream.
var flacMarker = []byte("fLaC")

// Verification problems
var (
	// ErrMissing is reported when an expected track file does not exist
	ErrMissing = errors.New("output file missing")

	// ErrEmpty is reported when a track file exists but has no content
	ErrEmpty = errors.New("output file empty")

	// ErrNotFLAC is reported when a track file does not start with a FLAC stream marker
	ErrNotFLAC = errors.New("output file is not a FLAC stream")
)

// Checker implements the OutputChecker interface
type Checker struct {
	logger *log.Logger
}

// NewChecker creates a new output checker
func NewChecker(logger *log.Logger) *Checker {
	return &Checker{
		logger: logger,
	}
}

// Verification represents the state of one expected track file
type Verification struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
	Err  error  `json:"-"`
}

// OK reports whether the file looks like a complete FLAC track
func (v Verification) OK() bool {
	return v.Err == nil
}

// Exists reports whether a regular file is already present at path
func (c *Checker) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	exists := info.Mode().IsRegular()

	c.logger.WithFields(log.Fields{
		"component": "output_checker",
		"operation": "exists",
		"path":      path,
		"exists":    exists,
	}).Debug("Checked for existing output")

	return exists
}

// Verify inspects every path concurrently and returns one Verification per
// path in input order. Only context cancellation produces an error.
func (c *Checker) Verify(ctx context.Context, paths []string) ([]Verification, error) {
	results := make([]Verification, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	c.logger.WithFields(log.Fields{
		"component":  "output_checker",
		"operation":  "verify",
		"file_count": len(paths),
	}).Debug("Verifying track outputs")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = verifyFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, v := range results {
		if !v.OK() {
			c.logger.WithError(v.Err).WithFields(log.Fields{
				"component": "output_checker",
				"operation": "verify",
				"path":      v.Path,
			}).Warn("Track output failed verification")
		}
	}

	return results, nil
}

func verifyFile(path string) Verification {
	v := Verification{Path: path}

	f, err := os.Open(path) // #nosec G304 -- path is derived from the parsed cue sheet
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			v.Err = ErrMissing
		} else {
			v.Err = err
		}
		return v
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		v.Err = err
		return v
	}
	v.Size = info.Size()
	if v.Size == 0 {
		v.Err = ErrEmpty
		return v
	}

	header := make([]byte, len(flacMarker))
	if _, err := io.ReadFull(f, header); err != nil || !bytes.Equal(header, flacMarker) {
		v.Err = fmt.Errorf("%w (header %q)", ErrNotFLAC, header)
	}
	return v
}

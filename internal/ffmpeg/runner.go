package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single track extraction.
const DefaultTimeout = time.Hour

// ExecRunner runs the binary synchronously with its standard streams
// discarded, bounded by Timeout.
type ExecRunner struct {
	Timeout time.Duration
	logger  *log.Logger
}

// NewExecRunner creates a runner. A non-positive timeout uses DefaultTimeout.
func NewExecRunner(timeout time.Duration, logger *log.Logger) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExecRunner{
		Timeout: timeout,
		logger:  logger,
	}
}

// Run executes binary with args and waits for it to exit. When the timeout
// expires the process is killed and the returned error wraps
// context.DeadlineExceeded.
func (r *ExecRunner) Run(ctx context.Context, binary string, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	r.logger.WithFields(log.Fields{
		"component": "ffmpeg_runner",
		"binary":    binary,
		"args":      strings.Join(args, " "),
		"timeout":   r.Timeout,
	}).Debug("Running media processor")

	cmd := exec.CommandContext(ctx, binary, args...) // #nosec G204 -- binary is the resolved ffmpeg path
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w after %s: %w", ctxErr, elapsed.Round(time.Millisecond), err)
		}
		return err
	}

	r.logger.WithFields(log.Fields{
		"component": "ffmpeg_runner",
		"elapsed":   elapsed.Round(time.Millisecond),
	}).Debug("Media processor finished")
	return nil
}

// Package cmd provides the verify command implementation for cuesplit.
package cmd

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/toozej/cuesplit/internal/cuesheet"
	"github.com/toozej/cuesplit/internal/outputs"
	"github.com/toozej/cuesplit/internal/splitter"
)

// newVerifyCmd creates the verify command for checking previously split tracks.
func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <cue_file>",
		Short: "Check that every track of a cue sheet was written",
		Long: `Check the output directory for the FLAC file of every track in the cue sheet.
Each file must exist, be non-empty and start with a FLAC stream marker.`,
		Args: cobra.ExactArgs(1),
		RunE: runVerify,
	}

	return cmd
}

// runVerify executes the verify command.
func runVerify(cmd *cobra.Command, args []string) error {
	tracks, err := cuesheet.Parse(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	checker := outputs.NewChecker(log.StandardLogger())
	results, err := checker.Verify(ctx, splitter.OutputPaths(outputDir, tracks))
	if err != nil {
		return err
	}

	failed := displayVerification(cmd.OutOrStdout(), results)
	if failed > 0 {
		return fmt.Errorf("%d of %d track(s) failed verification", failed, len(results))
	}
	return nil
}

// displayVerification prints one line per expected track and returns the number of failures
func displayVerification(w io.Writer, results []outputs.Verification) int {
	failed := 0
	for i, v := range results {
		if v.OK() {
			fmt.Fprintf(w, "✓ %02d. %s (%d bytes)\n", i+1, v.Path, v.Size)
			continue
		}
		failed++
		fmt.Fprintf(w, "✗ %02d. %s: %v\n", i+1, v.Path, v.Err)
	}
	fmt.Fprintf(w, "\nVerified: %d/%d\n", len(results)-failed, len(results))
	return failed
}

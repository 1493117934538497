// Package cmd provides command-line interface functionality for the cuesplit application.
//
// This package implements the root command and manages the command-line interface
// using the cobra library. It handles configuration, logging setup, and command
// execution for the cuesplit application.
//
// The package integrates with several components:
//   - Configuration management through pkg/config
//   - Cue sheet parsing through internal/cuesheet
//   - Track extraction through internal/splitter and internal/ffmpeg
//   - Manual pages through pkg/man
//   - Version information through pkg/version
//
// Example usage:
//
//	import "github.com/toozej/cuesplit/cmd/cuesplit"
//
//	func main() {
//		cmd.Execute()
//	}
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/toozej/cuesplit/internal/ffmpeg"
	"github.com/toozej/cuesplit/internal/outputs"
	"github.com/toozej/cuesplit/internal/splitter"
	"github.com/toozej/cuesplit/internal/types"
	"github.com/toozej/cuesplit/pkg/config"
	"github.com/toozej/cuesplit/pkg/man"
	"github.com/toozej/cuesplit/pkg/version"
)

// conf holds the application configuration loaded from environment variables.
// It is populated before every command runs; flags explicitly set on the
// command line take precedence over its values.
var (
	conf config.Config
	// debug controls the logging level for the application.
	// When true, debug-level logging is enabled through logrus.
	debug bool

	outputDir        string
	ffmpegPath       string
	timeout          time.Duration
	compressionLevel int
	skipExisting     bool
)

// rootCmd defines the base command for the cuesplit CLI application.
//
// It takes the cue sheet as its single positional argument and splits the
// referenced audio file into one FLAC file per track.
var rootCmd = &cobra.Command{
	Use:   "cuesplit <cue_file>",
	Short: "Split a single-file album into tracks using its cue sheet",
	Long: `cuesplit reads a cue sheet, resolves the audio image it references and runs ffmpeg
once per track to write lossless FLAC files named "NN - performer - title.flac".

Tracks are extracted one at a time. A failing track is reported and skipped; the
command succeeds when at least one track was extracted.`,
	Example: `  cuesplit album.cue
  cuesplit album.cue -o ~/Music/Album --ffmpeg /opt/ffmpeg/bin/ffmpeg`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: rootCmdPreRun,
	RunE:             rootCmdRun,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

// rootCmdRun splits the cue sheet named by args[0].
func rootCmdRun(cmd *cobra.Command, args []string) error {
	logger := log.StandardLogger()

	s := splitter.NewSplitter(
		splitter.Options{
			OutputDir:        outputDir,
			FFmpegPath:       ffmpegPath,
			CompressionLevel: compressionLevel,
			SkipExisting:     skipExisting,
		},
		ffmpeg.NewLocator(),
		ffmpeg.NewExecRunner(timeout, logger),
		outputs.NewChecker(logger),
		logger,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := s.Split(ctx, args[0])
	if result != nil {
		displaySplitResult(cmd.OutOrStdout(), result)
	}
	if err != nil {
		return err
	}

	if !result.Success() {
		return fmt.Errorf("no tracks were extracted: %s", result)
	}
	return nil
}

// rootCmdPreRun performs setup operations before executing the root command.
// This function is called before both the root command and any subcommands.
//
// It loads configuration, fills every flag that was not set explicitly from
// it, and configures the logging level based on the debug flag.
func rootCmdPreRun(cmd *cobra.Command, args []string) {
	conf = config.GetEnvVars()
	applyConfig(cmd, conf)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

// applyConfig copies configuration values into flag variables the user did
// not set on the command line.
func applyConfig(cmd *cobra.Command, c config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("output") {
		outputDir = c.Output.Dir
	}
	if !flags.Changed("ffmpeg") {
		ffmpegPath = c.FFmpeg.Path
	}
	if !flags.Changed("timeout") {
		timeout = c.FFmpeg.TimeoutDuration()
	}
	if !flags.Changed("compression-level") {
		compressionLevel = c.FFmpeg.CompressionLevel
	}
	if !flags.Changed("skip-existing") {
		skipExisting = c.Output.SkipExisting
	}
}

// displaySplitResult prints one line per track followed by a summary
func displaySplitResult(w io.Writer, result *types.SplitResult) {
	fmt.Fprintf(w, "\n💿 %s\n", result.CueFile)
	for _, audio := range result.AudioFiles {
		fmt.Fprintf(w, "   🎧 Source: %s\n", audio)
	}
	fmt.Fprintln(w)

	for _, outcome := range result.Outcomes {
		switch {
		case outcome.Skipped:
			fmt.Fprintf(w, "↷ %02d. Already exists: %s\n", outcome.Number, outcome.OutputPath)
		case outcome.Succeeded():
			fmt.Fprintf(w, "✓ %02d. Created: %s\n", outcome.Number, outcome.OutputPath)
		default:
			fmt.Fprintf(w, "✗ %02d. Failed: %s\n", outcome.Number, outcome.Err)
		}
	}

	fmt.Fprintf(w, "\nDone! Succeeded: %d/%d", result.Succeeded(), result.Total)
	if skipped := result.Skipped(); skipped > 0 {
		fmt.Fprintf(w, " (%d already present)", skipped)
	}
	fmt.Fprintln(w)
}

// Execute starts the command-line interface execution.
// This is the main entry point called from main.go to begin command processing.
//
// If command execution fails, it prints the error message to stdout and
// exits the program with status code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err.Error())
		os.Exit(1)
	}
}

// init initializes the command-line interface during package loading.
//
// The debug flag (-d, --debug) enables debug-level logging and the output
// flag (-o, --output) selects the track directory; both are persistent and
// inherited by all subcommands.
func init() {
	// create rootCmd-level flags
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", splitter.DefaultOutputDir, "Output directory for split tracks")

	rootCmd.Flags().StringVar(&ffmpegPath, "ffmpeg", "", "Path to the ffmpeg binary (discovered automatically if omitted)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", ffmpeg.DefaultTimeout, "Maximum time to spend extracting a single track")
	rootCmd.Flags().IntVar(&compressionLevel, "compression-level", ffmpeg.DefaultCompressionLevel, "FLAC compression level (0-12)")
	rootCmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Do not re-extract tracks whose output file already exists")

	// add sub-commands
	rootCmd.AddCommand(
		newTracksCmd(),
		newVerifyCmd(),
		man.NewManCmd(),
		version.Command(),
	)
}

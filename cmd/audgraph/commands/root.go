// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "audgraph",
	Short: "Build and render audio signal graphs",
	Long: `audgraph - build audio signal graphs from a small command grammar.

Grammar:
  FILE <path>
  SLNC <duration> <sampleRate> <sampleSize>
  GNRT SINE <frequency> <sampleRate> <duration>
  EFCT AMPL <factor> <command>
  EFCT NORM <target> <command>
  EFCT FDIN <duration> <sampleRate> <command>
  EFCT FOUT <duration> <sampleRate> <command>

Examples:
  # A 3 second tone with a one second fade out
  audgraph build -o tone.wav EFCT FOUT 1 44100 GNRT SINE 440 44100 3

  # Normalize a recording
  audgraph build -o loud.wav EFCT NORM 0.9 FILE quiet.wav

  # Inspect the result
  audgraph info loud.wav`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		initLogging(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initLogging sends slog output to the command's stderr, at debug level with -v.
func initLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
}

// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audgraph"
	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/fileaudio"
)

var (
	buildInputFile  string
	buildOutputFile string
)

var buildCmd = &cobra.Command{
	Use:   "build [command words...]",
	Short: "Build a signal graph and save or print it",
	Long: `Build a signal graph from a command.

The command is taken from the arguments when present, otherwise the first
command is read from the file given with -f, or from stdin.

With -o the result is saved in the format picked by the file extension
(.wav or .txt). Without it the text dump is written to stdout.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildInputFile, "file", "f", "", "read the command from this file")
	buildCmd.Flags().StringVarP(&buildOutputFile, "output", "o", "", "output file (.wav or .txt)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	in, closeIn, err := commandInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	src, err := audgraph.DefaultRegistry().Build(audio.NewTokens(in))
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	slog.Debug("graph built",
		"type", fmt.Sprintf("%T", src),
		"duration", src.Duration(),
		"rate", src.SampleRate(),
		"samples", src.SampleSize())

	if buildOutputFile == "" {
		return src.Serialize(cmd.OutOrStdout())
	}

	if err := fileaudio.Save(buildOutputFile, src); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	slog.Info("wrote", "path", buildOutputFile, "samples", src.SampleSize())

	return nil
}

// commandInput picks the command source: arguments, -f, then stdin.
func commandInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) > 0 {
		if buildInputFile != "" {
			return nil, nil, fmt.Errorf("use either command arguments or -f, not both")
		}
		return strings.NewReader(strings.Join(args, " ")), func() {}, nil
	}

	if buildInputFile == "" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(buildInputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open command file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/fileaudio"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show duration, rate, size and peak of a WAV or text file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	slog.Debug("opening", "path", path)

	buf, err := fileaudio.Open(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Duration:    %vs\n", buf.Duration())
	fmt.Fprintf(out, "Sample rate: %v Hz\n", buf.SampleRate())
	fmt.Fprintf(out, "Samples:     %d\n", buf.SampleSize())
	fmt.Fprintf(out, "Peak:        %.4f\n", audio.Peak(buf))

	return nil
}

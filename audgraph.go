// SPDX-License-Identifier: EPL-2.0

package audgraph

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/fileaudio"
)

var (
	defaultRegistry     *audio.Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry, populated on first use
// with FILE, SLNC, EFCT and GNRT in that order.
func DefaultRegistry() *audio.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = audio.NewRegistry(
			fileaudio.Creator{},
			audio.SilenceCreator{},
			audio.EffectCreator{},
			audio.GeneratorCreator{},
		)
	})
	return defaultRegistry
}

// Build reads one command from r with the default registry and returns the
// source graph it describes.
//
// Parameters:
//   - r: the command stream, e.g. a file holding "EFCT FDIN 0.5 44100 FILE in.wav"
//
// Returns:
//   - audio.Audio: the root of the built graph
//   - error: ErrUnknownCommand or ErrMalformedCommand for grammar problems,
//     or any error from loading a FILE source
//
// Only the first command is consumed. To read several commands from one
// stream, wrap it once with audio.NewTokens and call DefaultRegistry().Build
// repeatedly.
func Build(r io.Reader) (audio.Audio, error) {
	return DefaultRegistry().Build(audio.NewTokens(r))
}

// BuildString is Build over a string.
func BuildString(command string) (audio.Audio, error) {
	return Build(strings.NewReader(command))
}

// RenderFile builds command and writes the result to outPath, in the format
// picked by the extension of outPath.
//
// Example:
//
//	err := audgraph.RenderFile("EFCT NORM 0.9 FILE quiet.wav", "loud.wav")
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // outPath is neither .wav nor .txt
//	}
func RenderFile(command, outPath string) (audio.Audio, error) {
	src, err := BuildString(command)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", command, err)
	}

	if err := fileaudio.Save(outPath, src); err != nil {
		return nil, err
	}
	return src, nil
}

// SPDX-License-Identifier: EPL-2.0

package audgraph_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audgraph"
	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/fileaudio"
)

// Example_basicUsage demonstrates the most common use case:
// building a graph from a command and writing it to a WAV file.
func Example_basicUsage() {
	dir, err := os.MkdirTemp("", "audgraph-example")
	if err != nil {
		fmt.Printf("tempdir error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "tone.wav")
	src, err := audgraph.RenderFile("EFCT FOUT 0.25 8000 GNRT SINE 440 8000 1", out)
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}
	fmt.Printf("Rendered %d samples at %v Hz\n", src.SampleSize(), src.SampleRate())

	back, err := fileaudio.Open(out)
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}
	fmt.Printf("Read back %d samples\n", back.SampleSize())
	// Output:
	// Rendered 8000 samples at 8000 Hz
	// Read back 8000 samples
}

// Example_nestedEffects shows effects applied innermost first.
func Example_nestedEffects() {
	src, err := audgraph.BuildString("EFCT AMPL 0.5 EFCT FDIN 0.5 8 SLNC 1 8 8")
	if err != nil {
		fmt.Printf("build error: %v\n", err)
		return
	}

	outer := src.(*audio.Effect)
	inner := outer.Base().(*audio.Effect)

	fmt.Println(outer.Operation().Name())
	fmt.Println(inner.Operation().Name())
	fmt.Printf("%T\n", inner.Base())
	// Output:
	// amplify
	// fade-in
	// *audio.Silence
}

// Example_errorHandling demonstrates classifying build failures.
func Example_errorHandling() {
	_, err := audgraph.BuildString("REVERB 0.3 SLNC 1 8000 8000")
	fmt.Println(errors.Is(err, audio.ErrUnknownCommand))

	_, err = audgraph.BuildString("SLNC one 8000 8000")
	fmt.Println(errors.Is(err, audio.ErrMalformedCommand))

	_, err = audgraph.BuildString("FILE song.mp3")
	fmt.Println(errors.Is(err, audio.ErrUnsupportedFormat))
	// Output:
	// true
	// true
	// true
}

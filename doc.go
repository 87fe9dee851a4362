// SPDX-License-Identifier: EPL-2.0

// Package audgraph builds audio signal graphs from a small text grammar and
// renders them to WAV or text files.
//
// A signal is an audio.Audio: an indexable, finite sequence of mono samples.
// Sources are silence, sine generators and buffers loaded from files. Effects
// (amplify, normalize, fade in, fade out) decorate another source and can be
// nested to any depth.
//
// # Quick Start
//
// Build a graph from a command and write it out:
//
//	src, err := audgraph.RenderFile("EFCT FOUT 1 44100 GNRT SINE 440 44100 3", "tone.wav")
//
// # Command Grammar
//
// Tokens are separated by whitespace:
//
//	FILE <path>
//	SLNC <duration> <sampleRate> <sampleSize>
//	GNRT SINE <frequency> <sampleRate> <duration>
//	EFCT AMPL <factor> <command>
//	EFCT NORM <target> <command>
//	EFCT FDIN <duration> <sampleRate> <command>
//	EFCT FOUT <duration> <sampleRate> <command>
//
// An unknown command fails with audio.ErrUnknownCommand and a bad argument
// with audio.ErrMalformedCommand. Either way the rest of the line is
// discarded, so the next command in the stream can still be read.
//
// # Building Graphs In Code
//
// The same graph can be assembled without the grammar:
//
//	tone, _ := audio.NewGenerator(44100, 3, audio.Sine{Frequency: 440, Rate: 44100})
//	faded, _ := audio.NewEffect(tone, audio.NewFadeOut(1, 44100))
//	err := fileaudio.Save("tone.wav", faded)
//
// # Formats
//
//   - WAV (mono 16-bit PCM) via formats/wav
//   - Text dump via formats/txt
//
// fileaudio picks between them by file extension.
//
// # Error Handling
//
// Every error wraps one of the sentinels in package audio, so callers can
// classify failures with errors.Is:
//
//	_, err := audgraph.BuildString("FILE song.mp3")
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // ...
//	}
package audgraph

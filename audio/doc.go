// SPDX-License-Identifier: EPL-2.0

// Package audio models mono signals as indexable sample sources and composes
// them into decorator graphs.
//
// # Sources
//
// Every signal implements Audio:
//
//	type Audio interface {
//	    SampleRate() float64
//	    Duration() float64
//	    SampleSize() int
//	    At(i int) float64
//	    Set(i int, v float64) error
//	    Clone() Audio
//	    Serialize(w io.Writer) error
//	}
//
// The variants are:
//   - Buffer, samples held in memory (the only writable source)
//   - Silence, zero everywhere
//   - Generator, samples computed from the index by a GeneratorOperation
//   - Effect, an owned clone of another source with an Operation applied
//
// # Effects
//
// Operations come in two shapes. A SampleOperation maps a sample value
// (Amplify, Normalize); an IndexedOperation returns a gain for an index of a
// given length (FadeIn, FadeOut). Effects nest, innermost first:
//
//	in, _ := audio.NewEffect(src, audio.NewFadeIn(0.5, 44100))
//	out, _ := audio.NewEffect(in, audio.NewFadeOut(0.5, 44100))
//	v := out.At(100)
//
// # Commands
//
// A Registry builds a graph from text:
//
//	reg := audio.NewRegistry(audio.SilenceCreator{}, audio.EffectCreator{})
//	src, err := reg.BuildString("EFCT AMPL 2.0 SLNC 1 44100 44100")
//
// Unknown commands fail with ErrUnknownCommand and bad arguments with
// ErrMalformedCommand; either way the rest of the offending line is discarded
// so that the next command on the stream can still be read.
//
// # Sample Format
//
// Samples are float64, conventionally in [-1.0, 1.0].
package audio

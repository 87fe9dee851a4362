// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Operation is a pure sample transform. Effects accept one of two shapes:
// SampleOperation, applied to each sample value, or IndexedOperation, whose
// gain depends on the sample index and the total length.
type Operation interface {
	Name() string
}

type SampleOperation interface {
	Operation
	Apply(s float64) float64
}

type IndexedOperation interface {
	Operation
	// Gain is the multiplier for index i of n samples.
	Gain(i, n int) float64
}

// Amplify multiplies every sample by Factor. A negative factor inverts the
// phase, zero silences.
type Amplify struct {
	Factor float64
}

func NewAmplify(factor float64) Amplify { return Amplify{Factor: factor} }

func (Amplify) Name() string              { return "amplify" }
func (a Amplify) Apply(s float64) float64 { return s * a.Factor }

// normalizeFloor is the peak below which a source counts as silent.
const normalizeFloor = 1e-6

// Normalize scales a source so that its peak absolute sample becomes Target.
type Normalize struct {
	Target float64
	Gain   float64
}

// NewNormalize scans all of src for its peak. src must be the source the
// resulting Effect will wrap. Near-silent input keeps a gain of 1.
func NewNormalize(src Audio, target float64) Normalize {
	peak := Peak(src)

	gain := 1.0
	if peak > normalizeFloor {
		gain = target / peak
	}

	return Normalize{Target: target, Gain: gain}
}

func (Normalize) Name() string              { return "normalize" }
func (n Normalize) Apply(s float64) float64 { return s * n.Gain }

// Peak returns the largest absolute sample of src.
func Peak(src Audio) float64 {
	peak := 0.0
	for i := range src.SampleSize() {
		peak = max(peak, math.Abs(src.At(i)))
	}
	return peak
}

// fadeSamples is floor(duration * rate), clamped to [0, math.MaxInt].
func fadeSamples(duration, rate float64) int {
	n := math.Floor(duration * rate)
	if !(n > 0) {
		return 0
	}
	if n >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(n)
}

// FadeIn ramps linearly from 0 to 1 over the first Duration seconds.
type FadeIn struct {
	Duration   float64
	SampleRate float64
}

func NewFadeIn(duration, sampleRate float64) FadeIn {
	return FadeIn{Duration: duration, SampleRate: sampleRate}
}

func (FadeIn) Name() string { return "fade-in" }

func (f FadeIn) Gain(i, _ int) float64 {
	window := fadeSamples(f.Duration, f.SampleRate)
	if window == 0 || i >= window {
		return 1
	}
	return float64(i) / float64(window)
}

// FadeOut ramps linearly down to 0 over the last Duration seconds.
// A window shorter than one sample silences the whole source.
type FadeOut struct {
	Duration   float64
	SampleRate float64
}

func NewFadeOut(duration, sampleRate float64) FadeOut {
	return FadeOut{Duration: duration, SampleRate: sampleRate}
}

func (FadeOut) Name() string { return "fade-out" }

func (f FadeOut) Gain(i, n int) float64 {
	window := fadeSamples(f.Duration, f.SampleRate)
	if window == 0 || i >= n {
		return 0
	}
	if n-i <= window {
		return float64(n-i) / float64(window)
	}
	return 1
}

// Sine generates sin(2π·Frequency·i/Rate).
type Sine struct {
	Frequency float64
	Rate      float64
}

// DefaultSine is an A4 at 44.1 kHz.
func DefaultSine() Sine { return Sine{Frequency: 440, Rate: 44100} }

func (Sine) Name() string { return "sine" }

func (s Sine) Generate(i int) float64 {
	return math.Sin(2 * math.Pi * s.Frequency * float64(i) / s.Rate)
}

package audio

import (
	"math"
	"strings"
)

// newMockBuffer materializes a waveform for tests that cannot import
// internal/audiotest without a cycle.
func newMockBuffer(sampleRate float64, totalSamples int, waveform func(i int) float64) *Buffer {
	samples := make([]float64, totalSamples)
	for i := range samples {
		samples[i] = waveform(i)
	}

	buf, err := NewBuffer(sampleRate, float64(totalSamples)/sampleRate, samples)
	if err != nil {
		panic(err)
	}
	return buf
}

func newSineBuffer(sampleRate float64, totalSamples int, frequency float64) *Buffer {
	return newMockBuffer(sampleRate, totalSamples, func(i int) float64 {
		return math.Sin(2 * math.Pi * frequency * float64(i) / sampleRate)
	})
}

// mockConstructor consumes one token and returns a fixed source.
type mockConstructor struct {
	command string
	result  Audio
	seen    []string
}

func (m *mockConstructor) Command() string { return m.command }

func (m *mockConstructor) Build(_ *Registry, in *Tokens) (Audio, error) {
	tok, err := in.Next()
	if err != nil {
		return nil, err
	}
	m.seen = append(m.seen, strings.ToLower(tok))
	return m.result, nil
}

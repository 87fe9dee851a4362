// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer is a materialized source: its samples live in memory, loaded from a
// file or copied from another source.
type Buffer struct {
	Meta
	samples []float64
}

// NewBuffer takes ownership of samples. SampleSize is len(samples).
func NewBuffer(sampleRate, duration float64, samples []float64) (*Buffer, error) {
	meta, err := NewMeta(sampleRate, duration, len(samples))
	if err != nil {
		return nil, err
	}

	return &Buffer{Meta: meta, samples: samples}, nil
}

// NewBufferFrom materializes src, copying its metadata and every sample.
func NewBufferFrom(src Audio) (*Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidParameter)
	}

	meta, err := NewMeta(src.SampleRate(), src.Duration(), src.SampleSize())
	if err != nil {
		return nil, err
	}

	return &Buffer{Meta: meta, samples: Render(src)}, nil
}

// At returns 0 outside [0, SampleSize).
func (b *Buffer) At(i int) float64 {
	if i < 0 || i >= len(b.samples) {
		return 0
	}
	return b.samples[i]
}

// Sample is the range-checked form of At.
func (b *Buffer) Sample(i int) (float64, error) {
	if i < 0 || i >= len(b.samples) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(b.samples))
	}
	return b.samples[i], nil
}

func (b *Buffer) Set(i int, v float64) error {
	if i < 0 || i >= len(b.samples) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(b.samples))
	}
	b.samples[i] = v
	return nil
}

// Samples returns a copy of the buffer contents.
func (b *Buffer) Samples() []float64 {
	out := make([]float64, len(b.samples))
	copy(out, b.samples)
	return out
}

func (b *Buffer) Clone() Audio {
	return &Buffer{Meta: b.Meta, samples: b.Samples()}
}

func (b *Buffer) Serialize(w io.Writer) error {
	return Serialize(w, b)
}

func (b *Buffer) render(dst []float64) {
	copy(dst, b.samples)
}

// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Audio is an indexable, finite sequence of mono samples plus its metadata.
type Audio interface {
	// SampleRate in Hz.
	SampleRate() float64
	// Duration in seconds.
	Duration() float64
	// SampleSize is the number of samples.
	SampleSize() int

	// At returns the sample at index i.
	At(i int) float64
	// Set stores v at index i. Derived sources return ErrUnsupported.
	Set(i int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Audio
	// Serialize writes "duration rate size" on one line and the samples on the next.
	Serialize(w io.Writer) error
}

// Meta holds the metadata shared by every Audio variant.
// The zero value is unset; use NewMeta or the setters.
type Meta struct {
	sampleRate float64
	duration   float64
	sampleSize int
}

// NewMeta validates and returns metadata.
func NewMeta(sampleRate, duration float64, sampleSize int) (Meta, error) {
	var m Meta
	if err := m.SetSampleRate(sampleRate); err != nil {
		return Meta{}, err
	}
	if err := m.SetDuration(duration); err != nil {
		return Meta{}, err
	}
	if err := m.SetSampleSize(sampleSize); err != nil {
		return Meta{}, err
	}

	return m, nil
}

func (m *Meta) SampleRate() float64 { return m.sampleRate }
func (m *Meta) Duration() float64   { return m.duration }
func (m *Meta) SampleSize() int     { return m.sampleSize }

func (m *Meta) SetSampleRate(rate float64) error {
	if !(rate > 0) {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidParameter, rate)
	}
	m.sampleRate = rate
	return nil
}

func (m *Meta) SetDuration(duration float64) error {
	if !(duration > 0) {
		return fmt.Errorf("%w: duration %v", ErrInvalidParameter, duration)
	}
	m.duration = duration
	return nil
}

func (m *Meta) SetSampleSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: sample size %d", ErrInvalidParameter, size)
	}
	m.sampleSize = size
	return nil
}

// metaOf copies the metadata of any source.
func metaOf(a Audio) Meta {
	return Meta{
		sampleRate: a.SampleRate(),
		duration:   a.Duration(),
		sampleSize: a.SampleSize(),
	}
}

// renderer is implemented by sources that can fill a whole block faster than
// calling At for every index. len(dst) is always SampleSize.
type renderer interface {
	render(dst []float64)
}

// Render returns every sample of src, in order.
func Render(src Audio) []float64 {
	dst := make([]float64, src.SampleSize())
	renderInto(src, dst)
	return dst
}

func renderInto(src Audio, dst []float64) {
	if r, ok := src.(renderer); ok {
		r.render(dst)
		return
	}
	for i := range dst {
		dst[i] = src.At(i)
	}
}

// formatFloat formats a value with the shortest representation that
// parses back to the same value.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Serialize writes a in the text layout:
//
//	<duration> <sampleRate> <sampleSize>
//	s0 s1 ... s(n-1)
func Serialize(w io.Writer, a Audio) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(formatFloat(a.Duration()))
	bw.WriteByte(' ')
	bw.WriteString(formatFloat(a.SampleRate()))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(a.SampleSize()))
	bw.WriteByte('\n')

	buf := make([]byte, 0, 32)
	for i, s := range Render(a) {
		if i > 0 {
			bw.WriteByte(' ')
		}
		buf = strconv.AppendFloat(buf[:0], s, 'g', -1, 64)
		bw.Write(buf)
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

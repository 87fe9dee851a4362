// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audgraph/audio"
)

// NewSource materializes totalSamples samples of waveform at sampleRate.
// The duration is totalSamples / sampleRate.
func NewSource(sampleRate float64, totalSamples int, waveform func(i int) float64) *audio.Buffer {
	samples := make([]float64, totalSamples)
	for i := range samples {
		samples[i] = waveform(i)
	}

	buf, err := audio.NewBuffer(sampleRate, float64(totalSamples)/sampleRate, samples)
	if err != nil {
		panic(fmt.Sprintf("audiotest: %v", err))
	}
	return buf
}

// NewSilentSource creates a buffer of zeros.
func NewSilentSource(sampleRate float64, totalSamples int) *audio.Buffer {
	return NewSource(sampleRate, totalSamples, func(int) float64 { return 0 })
}

// NewSineSource creates a buffer holding a sine wave.
func NewSineSource(sampleRate float64, totalSamples int, frequency float64) *audio.Buffer {
	return NewSource(sampleRate, totalSamples, func(i int) float64 {
		t := float64(i) / sampleRate
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantSource creates a buffer with every sample set to value.
func NewConstantSource(sampleRate float64, totalSamples int, value float64) *audio.Buffer {
	return NewSource(sampleRate, totalSamples, func(int) float64 { return value })
}

// NewRampSource creates a buffer rising linearly from -1 towards 1.
func NewRampSource(sampleRate float64, totalSamples int) *audio.Buffer {
	return NewSource(sampleRate, totalSamples, func(i int) float64 {
		return -1 + 2*float64(i)/float64(totalSamples)
	})
}

// ReadWriteSeeker is an in-memory io.ReadWriteSeeker, for codecs that need to
// seek without touching the filesystem.
type ReadWriteSeeker struct {
	data   []byte
	offset int64
}

// NewReadWriteSeeker starts with a copy of data, positioned at 0.
func NewReadWriteSeeker(data []byte) *ReadWriteSeeker {
	return &ReadWriteSeeker{data: append([]byte(nil), data...)}
}

// Bytes returns the whole contents.
func (rs *ReadWriteSeeker) Bytes() []byte { return rs.data }

func (rs *ReadWriteSeeker) Read(p []byte) (int, error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n := copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *ReadWriteSeeker) Write(p []byte) (int, error) {
	end := rs.offset + int64(len(p))
	if end > int64(len(rs.data)) {
		rs.data = append(rs.data, make([]byte, end-int64(len(rs.data)))...)
	}
	copy(rs.data[rs.offset:], p)
	rs.offset = end
	return len(p), nil
}

func (rs *ReadWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}

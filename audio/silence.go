// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Silence answers 0 for every index. It has no buffer.
type Silence struct {
	Meta
}

func NewSilence(duration, sampleRate float64, sampleSize int) (*Silence, error) {
	meta, err := NewMeta(sampleRate, duration, sampleSize)
	if err != nil {
		return nil, err
	}

	return &Silence{Meta: meta}, nil
}

func (s *Silence) At(int) float64 { return 0 }

func (s *Silence) Set(int, float64) error {
	return fmt.Errorf("%w: silence is read-only", ErrUnsupported)
}

func (s *Silence) Clone() Audio {
	c := *s
	return &c
}

func (s *Silence) Serialize(w io.Writer) error {
	return Serialize(w, s)
}

func (s *Silence) render(dst []float64) {
	clear(dst)
}

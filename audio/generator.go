// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// GeneratorOperation computes the sample at an index from nothing but the index.
type GeneratorOperation interface {
	Operation
	Generate(i int) float64
}

// Generator is a source whose samples are computed on demand.
type Generator struct {
	Meta
	op GeneratorOperation
}

// NewGenerator sizes the source as floor(sampleRate * duration).
func NewGenerator(sampleRate, duration float64, op GeneratorOperation) (*Generator, error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil generator operation", ErrInvalidParameter)
	}

	var meta Meta
	if err := meta.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	if err := meta.SetDuration(duration); err != nil {
		return nil, err
	}
	if err := meta.SetSampleSize(int(math.Floor(sampleRate * duration))); err != nil {
		return nil, err
	}

	return &Generator{Meta: meta, op: op}, nil
}

// Operation returns the generating operation.
func (g *Generator) Operation() GeneratorOperation { return g.op }

// At returns 0 outside [0, SampleSize).
func (g *Generator) At(i int) float64 {
	if i < 0 || i >= g.SampleSize() {
		return 0
	}
	return g.op.Generate(i)
}

func (g *Generator) Set(int, float64) error {
	return fmt.Errorf("%w: %s generator is read-only", ErrUnsupported, g.op.Name())
}

// Clone copies the operation by value; operations hold no shared state.
func (g *Generator) Clone() Audio {
	c := *g
	return &c
}

func (g *Generator) Serialize(w io.Writer) error {
	return Serialize(w, g)
}

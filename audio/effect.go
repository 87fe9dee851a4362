// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-vecmath"
)

// Effect decorates a base source it exclusively owns, applying an Operation
// to every sample read through it. Effects are immutable.
type Effect struct {
	Meta
	base Audio
	op   Operation
}

// NewEffect clones base; later changes to the caller's base are not seen.
// op must be a SampleOperation or an IndexedOperation.
func NewEffect(base Audio, op Operation) (*Effect, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: nil base", ErrInvalidParameter)
	}
	if err := checkOperation(op); err != nil {
		return nil, err
	}

	owned := base.Clone()
	meta, err := NewMeta(owned.SampleRate(), owned.Duration(), owned.SampleSize())
	if err != nil {
		return nil, err
	}

	return &Effect{Meta: meta, base: owned, op: op}, nil
}

// NormalizeEffect measures the peak of base and wraps it in one step, so the
// gain always comes from the wrapped data.
func NormalizeEffect(base Audio, target float64) (*Effect, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: nil base", ErrInvalidParameter)
	}
	return NewEffect(base, NewNormalize(base, target))
}

func checkOperation(op Operation) error {
	switch op.(type) {
	case SampleOperation, IndexedOperation:
		return nil
	case nil:
		return fmt.Errorf("%w: nil operation", ErrInvalidParameter)
	default:
		return fmt.Errorf("%w: %s is neither a sample nor an indexed operation", ErrInvalidParameter, op.Name())
	}
}

// Operation returns the applied operation.
func (e *Effect) Operation() Operation { return e.op }

// Base returns the owned base source. It must not be modified.
func (e *Effect) Base() Audio { return e.base }

func (e *Effect) At(i int) float64 {
	switch op := e.op.(type) {
	case SampleOperation:
		return op.Apply(e.base.At(i))
	case IndexedOperation:
		return e.base.At(i) * op.Gain(i, e.base.SampleSize())
	}
	return 0
}

func (e *Effect) Set(int, float64) error {
	return fmt.Errorf("%w: %s effect is read-only", ErrUnsupported, e.op.Name())
}

func (e *Effect) Clone() Audio {
	return &Effect{Meta: e.Meta, base: e.base.Clone(), op: e.op}
}

// CopyFrom makes e a deep copy of other. e is left unchanged when other is nil.
func (e *Effect) CopyFrom(other *Effect) error {
	if other == nil {
		return fmt.Errorf("%w: nil effect", ErrInvalidParameter)
	}
	if e == other {
		return nil
	}

	base := other.base.Clone()
	e.base = base
	e.op = other.op
	e.Meta = metaOf(base)

	return nil
}

func (e *Effect) Serialize(w io.Writer) error {
	return Serialize(w, e)
}

func (e *Effect) render(dst []float64) {
	renderInto(e.base, dst)

	switch op := e.op.(type) {
	case SampleOperation:
		for i, s := range dst {
			dst[i] = op.Apply(s)
		}
	case IndexedOperation:
		n := e.base.SampleSize()
		env := make([]float64, len(dst))
		for i := range env {
			env[i] = op.Gain(i, n)
		}
		vecmath.MulBlockInPlace(dst, env)
	}
}

// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	CommandSilence   = "SLNC"
	CommandEffect    = "EFCT"
	CommandGenerator = "GNRT"
)

// SilenceCreator handles "SLNC <duration> <sampleRate> <sampleSize>".
type SilenceCreator struct{}

func (SilenceCreator) Command() string { return CommandSilence }

func (SilenceCreator) Build(_ *Registry, in *Tokens) (Audio, error) {
	duration, err := in.Float("duration")
	if err != nil {
		return nil, err
	}
	rate, err := in.Float("sample rate")
	if err != nil {
		return nil, err
	}
	size, err := in.Int("sample size")
	if err != nil {
		return nil, err
	}

	s, err := NewSilence(duration, rate, size)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// EffectCreator handles "EFCT <kind> <args...> <command>", where command
// builds the wrapped source.
type EffectCreator struct{}

func (EffectCreator) Command() string { return CommandEffect }

func (EffectCreator) Build(reg *Registry, in *Tokens) (Audio, error) {
	kind, err := in.Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing effect type", ErrMalformedCommand)
	}
	if err != nil {
		return nil, err
	}

	switch kind {
	case "AMPL":
		factor, err := in.Float("amplify factor")
		if err != nil {
			return nil, err
		}
		base, err := buildBase(reg, in, kind)
		if err != nil {
			return nil, err
		}
		return wrap(base, NewAmplify(factor))

	case "NORM":
		target, err := in.Float("normalize target")
		if err != nil {
			return nil, err
		}
		base, err := buildBase(reg, in, kind)
		if err != nil {
			return nil, err
		}
		return wrap(base, NewNormalize(base, target))

	case "FDIN", "FOUT":
		duration, err := in.Float("fade duration")
		if err != nil {
			return nil, err
		}
		rate, err := in.Float("fade sample rate")
		if err != nil {
			return nil, err
		}
		base, err := buildBase(reg, in, kind)
		if err != nil {
			return nil, err
		}
		if kind == "FDIN" {
			return wrap(base, NewFadeIn(duration, rate))
		}
		return wrap(base, NewFadeOut(duration, rate))

	default:
		in.SkipLine()
		return nil, fmt.Errorf("%w: effect %q", ErrUnknownCommand, kind)
	}
}

// wrap adopts base into a new Effect.
func wrap(base Audio, op Operation) (Audio, error) {
	e, err := NewEffect(base, op)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func buildBase(reg *Registry, in *Tokens, kind string) (Audio, error) {
	base, err := reg.Build(in)
	if err != nil {
		return nil, fmt.Errorf("%s %s base: %w", CommandEffect, kind, err)
	}
	return base, nil
}

// GeneratorCreator handles "GNRT SINE <frequency> <sampleRate> <duration>".
type GeneratorCreator struct{}

func (GeneratorCreator) Command() string { return CommandGenerator }

func (GeneratorCreator) Build(_ *Registry, in *Tokens) (Audio, error) {
	kind, err := in.Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing generator type", ErrMalformedCommand)
	}
	if err != nil {
		return nil, err
	}

	if kind != "SINE" {
		in.SkipLine()
		return nil, fmt.Errorf("%w: generator %q", ErrUnknownCommand, kind)
	}

	freq, err := in.Float("frequency")
	if err != nil {
		return nil, err
	}
	rate, err := in.Float("sample rate")
	if err != nil {
		return nil, err
	}
	duration, err := in.Float("duration")
	if err != nil {
		return nil, err
	}

	g, err := NewGenerator(rate, duration, Sine{Frequency: freq, Rate: rate})
	if err != nil {
		return nil, err
	}
	return g, nil
}

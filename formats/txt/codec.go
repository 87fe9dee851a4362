// SPDX-License-Identifier: EPL-2.0

package txt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ik5/audgraph/audio"
)

// maxPrealloc caps the sample slice allocated up front from the header, so a
// bogus size fails on short data instead of exhausting memory.
const maxPrealloc = 1 << 16

// Decode reads the text layout written by audio.Serialize. Tokens may be
// separated by any whitespace; anything after the last declared sample is
// ignored.
func Decode(r io.Reader) (*audio.Buffer, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	duration, err := scanFloat(sc, "duration")
	if err != nil {
		return nil, err
	}
	rate, err := scanFloat(sc, "sample rate")
	if err != nil {
		return nil, err
	}

	word, err := scanWord(sc, "sample size")
	if err != nil {
		return nil, err
	}
	size, err := strconv.Atoi(word)
	if err != nil {
		return nil, fmt.Errorf("%w: sample size %q", ErrBadNumber, word)
	}
	if _, err := audio.NewMeta(rate, duration, size); err != nil {
		return nil, err
	}

	samples := make([]float64, 0, min(size, maxPrealloc))
	for i := range size {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
			}
			return nil, fmt.Errorf("%w: got %d of %d", ErrShortData, i, size)
		}

		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d %q", ErrBadNumber, i, sc.Text())
		}
		samples = append(samples, v)
	}

	return audio.NewBuffer(rate, duration, samples)
}

// Encode writes src in the text layout.
func Encode(w io.Writer, src audio.Audio) error {
	if src == nil {
		return fmt.Errorf("%w: nil source", audio.ErrInvalidParameter)
	}
	return src.Serialize(w)
}

// Codec adapts Decode and Encode to seekable files.
type Codec struct{}

func (Codec) Decode(r io.ReadSeeker) (*audio.Buffer, error) { return Decode(r) }

func (Codec) Encode(w io.WriteSeeker, src audio.Audio) error { return Encode(w, src) }

func scanWord(sc *bufio.Scanner, name string) (string, error) {
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	return "", fmt.Errorf("%w: no %s", ErrMissingHeader, name)
}

func scanFloat(sc *bufio.Scanner, name string) (float64, error) {
	word, err := scanWord(sc, name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBadNumber, name, word)
	}
	return v, nil
}

// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Tokens reads whitespace-delimited tokens from a text stream.
type Tokens struct {
	r *bufio.Reader
	// lineDone is set when the last token was terminated by a newline or by
	// the end of the stream, so there is nothing left of its line to skip.
	lineDone bool
}

func NewTokens(r io.Reader) *Tokens {
	if br, ok := r.(*bufio.Reader); ok {
		return &Tokens{r: br}
	}
	return &Tokens{r: bufio.NewReader(r)}
}

// Next returns the next token, or io.EOF when the stream holds no more.
func (t *Tokens) Next() (string, error) {
	var sb strings.Builder

	for {
		c, _, err := t.r.ReadRune()
		if err != nil {
			t.lineDone = true
			if sb.Len() > 0 && errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("%w: %w", ErrIO, err)
		}

		if unicode.IsSpace(c) {
			if sb.Len() == 0 {
				continue
			}
			t.lineDone = c == '\n'
			return sb.String(), nil
		}

		sb.WriteRune(c)
	}
}

// Float reads a numeric argument. On failure the rest of the line is discarded.
func (t *Tokens) Float(name string) (float64, error) {
	tok, err := t.Next()
	if err != nil {
		t.SkipLine()
		return 0, fmt.Errorf("%w: missing %s: %w", ErrMalformedCommand, name, err)
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		t.SkipLine()
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrMalformedCommand, name, tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.SkipLine()
		return 0, fmt.Errorf("%w: %s %q is not finite", ErrMalformedCommand, name, tok)
	}

	return v, nil
}

// Int reads an integer argument. On failure the rest of the line is discarded.
func (t *Tokens) Int(name string) (int, error) {
	tok, err := t.Next()
	if err != nil {
		t.SkipLine()
		return 0, fmt.Errorf("%w: missing %s: %w", ErrMalformedCommand, name, err)
	}

	v, err := strconv.Atoi(tok)
	if err != nil {
		t.SkipLine()
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedCommand, name, tok)
	}

	return v, nil
}

// SkipLine discards the remainder of the line holding the last token.
func (t *Tokens) SkipLine() {
	if t.lineDone {
		t.lineDone = false
		return
	}

	for {
		c, _, err := t.r.ReadRune()
		if err != nil || c == '\n' {
			return
		}
	}
}

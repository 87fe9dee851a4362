// SPDX-License-Identifier: EPL-2.0

// Package txt reads and writes the plain-text sample dump:
//
//	<duration> <sampleRate> <sampleSize>
//	s0 s1 ... s(sampleSize-1)
//
// Any whitespace separates tokens. A missing or non-numeric token, or a
// stream that ends before sampleSize samples, fails with an error wrapping
// audio.ErrMalformedFile. Non-positive header values fail with
// audio.ErrInvalidParameter.
package txt

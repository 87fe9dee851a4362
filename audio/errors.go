// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMalformedCommand  = errors.New("malformed command")
	ErrMalformedFile     = errors.New("malformed file")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrIO                = errors.New("i/o failure")
	ErrUnsupported       = errors.New("operation not supported")
	ErrOutOfRange        = errors.New("index out of range")
)

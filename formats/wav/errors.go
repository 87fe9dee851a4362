// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/audgraph/audio"
)

var (
	ErrNotWavFile            = fmt.Errorf("%w: not a WAV file", audio.ErrMalformedFile)
	ErrMissingFmtChunk       = fmt.Errorf("%w: missing fmt chunk", audio.ErrMalformedFile)
	ErrMissingDataChunk      = fmt.Errorf("%w: missing data chunk", audio.ErrMalformedFile)
	ErrTruncated             = fmt.Errorf("%w: truncated WAV file", audio.ErrMalformedFile)
	ErrOnlyPCM16bitSupported = fmt.Errorf("%w: only PCM 16-bit supported", audio.ErrUnsupportedFormat)
	ErrOnlyMonoSupported     = fmt.Errorf("%w: only mono output supported", audio.ErrUnsupportedFormat)
)

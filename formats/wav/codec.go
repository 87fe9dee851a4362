// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/audgraph/audio"
)

// Codec reads and writes WAV files.
type Codec struct{}

func (Codec) Decode(r io.ReadSeeker) (*audio.Buffer, error) { return Decode(r) }

func (Codec) Encode(w io.WriteSeeker, src audio.Audio) error { return Encode(w, src) }

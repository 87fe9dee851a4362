// SPDX-License-Identifier: EPL-2.0

package fileaudio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audgraph/audio"
)

const CommandFile = "FILE"

// Creator handles "FILE <path>". A nil Codecs uses Default.
type Creator struct {
	Codecs *Codecs
}

func (Creator) Command() string { return CommandFile }

func (c Creator) Build(_ *audio.Registry, in *audio.Tokens) (audio.Audio, error) {
	path, err := in.Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing file path", audio.ErrMalformedCommand)
	}
	if err != nil {
		return nil, err
	}

	codecs := c.Codecs
	if codecs == nil {
		codecs = Default()
	}

	buf, err := codecs.Open(path)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

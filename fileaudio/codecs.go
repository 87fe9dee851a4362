// SPDX-License-Identifier: EPL-2.0

package fileaudio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/formats/txt"
	"github.com/ik5/audgraph/formats/wav"
)

// Codec loads and stores materialized sources in one file format.
type Codec interface {
	Decode(r io.ReadSeeker) (*audio.Buffer, error)
	Encode(w io.WriteSeeker, src audio.Audio) error
}

// Codecs maps file extensions (lower case, without the dot) to codecs.
type Codecs struct {
	codecs map[string]Codec

	mtx *sync.Mutex
}

func NewCodecs() *Codecs {
	return &Codecs{
		codecs: make(map[string]Codec),
		mtx:    &sync.Mutex{},
	}
}

// DefaultCodecs knows "wav" and "txt".
func DefaultCodecs() *Codecs {
	c := NewCodecs()
	c.Register("wav", wav.Codec{})
	c.Register("txt", txt.Codec{})
	return c
}

func (c *Codecs) Register(ext string, codec Codec) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.codecs[strings.ToLower(ext)] = codec
}

func (c *Codecs) Get(ext string) (Codec, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	codec, ok := c.codecs[strings.ToLower(ext)]
	return codec, ok
}

// ForPath picks the codec from the extension of path.
func (c *Codecs) ForPath(path string) (Codec, error) {
	ext := filepath.Ext(path)
	if len(ext) > 0 {
		ext = ext[1:] // drop dot
	}

	codec, ok := c.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, path)
	}
	return codec, nil
}

// Open decodes the file at path.
func (c *Codecs) Open(path string) (*audio.Buffer, error) {
	codec, err := c.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer f.Close()

	buf, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// Save creates or truncates the file at path and encodes src into it.
func (c *Codecs) Save(path string, src audio.Audio) (err error) {
	codec, err := c.ForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", audio.ErrIO, cerr)
		}
	}()

	if err := codec.Encode(f, src); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

var (
	defaultCodecs     *Codecs
	defaultCodecsOnce sync.Once
)

// Default returns the process-wide table built by DefaultCodecs.
func Default() *Codecs {
	defaultCodecsOnce.Do(func() {
		defaultCodecs = DefaultCodecs()
	})
	return defaultCodecs
}

// Open decodes path with the default codecs.
func Open(path string) (*audio.Buffer, error) { return Default().Open(path) }

// Save encodes src to path with the default codecs.
func Save(path string, src audio.Audio) error { return Default().Save(path, src) }

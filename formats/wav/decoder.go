// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/utils"
)

// fmtChunk is the standard 16-byte body of a "fmt " chunk, preceded by its size.
type fmtChunk struct {
	Size          uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

const fmtBodySize = 16

// maxPrealloc caps the sample slice allocated up front from the data chunk
// size, so a bogus size fails as truncated data instead of exhausting memory.
const maxPrealloc = 1 << 16

// ReadPCM16 parses a 16-bit PCM WAV stream. Chunks other than "fmt " and
// "data" are skipped. For multi-channel files only the first channel is kept,
// so the returned buffer is always mono.
func ReadPCM16(r io.ReadSeeker) (*goaudio.IntBuffer, error) {
	if err := expectTag(r, "RIFF", ErrNotWavFile); err != nil {
		return nil, err
	}
	if _, err := r.Seek(4, io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	if err := expectTag(r, "WAVE", ErrNotWavFile); err != nil {
		return nil, err
	}
	if err := expectTag(r, "fmt ", ErrMissingFmtChunk); err != nil {
		return nil, err
	}

	var format fmtChunk
	if err := binary.Read(r, binary.LittleEndian, &format); err != nil {
		return nil, readErr(err)
	}
	if format.Size < fmtBodySize {
		return nil, fmt.Errorf("%w: fmt chunk of %d bytes", audio.ErrMalformedFile, format.Size)
	}
	if extra := int64(format.Size - fmtBodySize); extra > 0 {
		if _, err := r.Seek(extra, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
	}

	if format.BitsPerSample != 16 {
		return nil, fmt.Errorf("%w: %d-bit samples", ErrOnlyPCM16bitSupported, format.BitsPerSample)
	}
	if format.NumChannels == 0 {
		return nil, fmt.Errorf("%w: zero channels", audio.ErrMalformedFile)
	}

	dataSize, err := seekData(r)
	if err != nil {
		return nil, err
	}

	channels := int(format.NumChannels)
	frames := int(dataSize / 2 / uint32(channels))
	data := make([]int, 0, min(frames, maxPrealloc))

	br := bufio.NewReader(r)
	frame := make([]byte, 2*channels)
	for i := range frames {
		if _, err := io.ReadFull(br, frame); err != nil {
			return nil, fmt.Errorf("%w: frame %d of %d", ErrTruncated, i, frames)
		}
		data = append(data, int(int16(binary.LittleEndian.Uint16(frame))))
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  int(format.SampleRate),
		},
		Data:           data,
		SourceBitDepth: 16,
	}, nil
}

// Decode reads a WAV stream into a materialized source.
func Decode(r io.ReadSeeker) (*audio.Buffer, error) {
	buf, err := ReadPCM16(r)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = utils.Int16ToFloat(int16(v))
	}

	rate := float64(buf.Format.SampleRate)
	return audio.NewBuffer(rate, float64(len(samples))/rate, samples)
}

func expectTag(r io.Reader, tag string, mismatch error) error {
	var id [4]byte
	if _, err := io.ReadFull(r, id[:]); err != nil {
		return readErr(err)
	}
	if string(id[:]) != tag {
		return fmt.Errorf("%w: got %q, want %q", mismatch, id[:], tag)
	}
	return nil
}

// seekData walks the chunk list until "data" and returns its size, leaving r
// at the first sample.
func seekData(r io.ReadSeeker) (uint32, error) {
	var header struct {
		ID   [4]byte
		Size uint32
	}

	for {
		if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, ErrMissingDataChunk
			}
			return 0, fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
		if string(header.ID[:]) == "data" {
			return header.Size, nil
		}

		// Chunks are word aligned.
		skip := int64(header.Size) + int64(header.Size&1)
		if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
	}
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return fmt.Errorf("%w: %w", audio.ErrIO, err)
}

// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/utils"
)

const headerSize = 44

// WritePCM16 writes buf as a mono 16-bit PCM WAV starting at the current
// offset of w. Once the samples are out, the RIFF and data sizes are patched
// from the number of bytes actually written and w is left at the end.
func WritePCM16(w io.WriteSeeker, buf *goaudio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: nil buffer or format", audio.ErrInvalidParameter)
	}
	if buf.Format.NumChannels != 1 {
		return fmt.Errorf("%w: %d channels", ErrOnlyMonoSupported, buf.Format.NumChannels)
	}

	start, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	const (
		numChannels   = 1
		bitsPerSample = 16
	)
	sampleRate := uint32(buf.Format.SampleRate)
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := uint16(numChannels * bitsPerSample / 8)

	header := make([]byte, headerSize)

	// RIFF header (12 bytes), size patched below
	copy(header[0:4], "RIFF")
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes), size patched below
	copy(header[36:40], "data")

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	var sample [2]byte
	for _, v := range buf.Data {
		binary.LittleEndian.PutUint16(sample[:], uint16(clampInt16(v)))
		if _, err := bw.Write(sample[:]); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	end, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	dataSize := uint32(end - start - headerSize)
	if err := patchUint32(w, start+40, dataSize); err != nil {
		return err
	}
	if err := patchUint32(w, start+4, 36+dataSize); err != nil {
		return err
	}

	if _, err := w.Seek(end, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}

// Encode quantizes every sample of src and writes it as a WAV stream.
func Encode(w io.WriteSeeker, src audio.Audio) error {
	if src == nil {
		return fmt.Errorf("%w: nil source", audio.ErrInvalidParameter)
	}

	samples := audio.Render(src)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(utils.FloatToInt16(s))
	}

	return WritePCM16(w, &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  int(src.SampleRate()),
		},
		Data:           data,
		SourceBitDepth: 16,
	})
}

func patchUint32(w io.WriteSeeker, offset int64, v uint32) error {
	if _, err := w.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	if _, err := w.Write(b[:]); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	return nil
}

func clampInt16(v int) int16 {
	return int16(min(max(v, math.MinInt16), math.MaxInt16))
}
